package echoapi

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/core/attendance"
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func attachmentHeader(ctx echo.Context, contentType, name string) {
	ctx.Response().Header().Set(echo.HeaderContentType, contentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
}

var studentExportHeader = []interface{}{
	"ID", "Name", "Email", "Phone", "Class", "Section", "Roll Number", "Status",
	"Gender", "Blood Group", "Address", "Date of Birth", "Parent Name", "Parent Phone", "Admission Date",
}

// export streams the full student roster as CSV.
func (api *studentAPI) export(ctx echo.Context) error {
	students, err := api.svc.QueryAll()
	if err != nil {
		return err
	}

	name := fmt.Sprintf("students-%s.csv", core.Today())
	attachmentHeader(ctx, contentTypeCSV, name)
	ctx.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(ctx.Response())
	header := make([]string, len(studentExportHeader))
	for i, h := range studentExportHeader {
		header[i] = h.(string)
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range students {
		row := []string{
			s.ID, s.Name, s.Email, s.Phone, s.Class, s.Section, s.RollNumber, s.Status,
			s.Gender, s.BloodGroup, s.Address, s.DateOfBirth, s.ParentName, s.ParentPhone, s.AdmissionDate,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// exportXLSX renders the roster as a spreadsheet.
func (api *studentAPI) exportXLSX(ctx echo.Context) error {
	students, err := api.svc.QueryAll()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Students"
	f.SetSheetName(f.GetSheetName(0), sheet)
	if err := f.SetSheetRow(sheet, "A1", &studentExportHeader); err != nil {
		return err
	}
	for i, s := range students {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			s.ID, s.Name, s.Email, s.Phone, s.Class, s.Section, s.RollNumber, s.Status,
			s.Gender, s.BloodGroup, s.Address, s.DateOfBirth, s.ParentName, s.ParentPhone, s.AdmissionDate,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	name := fmt.Sprintf("students-%s.xlsx", core.Today())
	attachmentHeader(ctx, contentTypeXLSX, name)
	ctx.Response().WriteHeader(http.StatusOK)
	_, err = f.WriteTo(ctx.Response())
	return err
}

// export renders the attendance register as a spreadsheet, optionally
// filtered like the list endpoint.
func (api *attendanceAPI) export(ctx echo.Context) error {
	var filter attendance.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return err
	}
	records, err := api.svc.Filter(filter)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	f.SetSheetName(f.GetSheetName(0), sheet)
	header := []interface{}{"ID", "Student ID", "Student Name", "Class", "Date", "Status", "Course"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.ID, r.StudentID, r.StudentName, r.Class, r.Date, r.Status, r.Course}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	name := fmt.Sprintf("attendance-%s.xlsx", core.Today())
	attachmentHeader(ctx, contentTypeXLSX, name)
	ctx.Response().WriteHeader(http.StatusOK)
	_, err = f.WriteTo(ctx.Response())
	return err
}
