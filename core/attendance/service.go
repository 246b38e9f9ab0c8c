package attendance

import (
	"errors"
	"fmt"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/core/activity"
	"github.com/edutrack/edutrack/core/student"
)

var ErrNotFound = errors.New("attendance record not found")

// DefaultCourse is used when a mark names no course; class-wide roll calls
// record against it.
const DefaultCourse = "General"

type (
	Repository interface {
		// UpsertRecord replaces the record matching (studentId, date, course)
		// or appends a new one with the next free "ATTNNN" id.
		UpsertRecord(r Record) (Record, error)
		QueryAllRecords() ([]Record, error)
		GetRecordByID(id string) (Record, error)
		FilterRecords(filter QueryFilter) ([]Record, error)
		DeleteRecordByID(id string) error
	}

	// StudentDirectory resolves the soft studentId reference at the boundary.
	StudentDirectory interface {
		GetStudentByID(id string) (student.Student, error)
	}

	Service struct {
		repo     Repository
		students StudentDirectory
		log      *activity.Service
	}
)

func NewService(repo Repository, students StudentDirectory, log *activity.Service) *Service {
	return &Service{repo: repo, students: students, log: log}
}

// MarkAttendance records or replaces the mark for (student, date, course).
func (svc *Service) MarkAttendance(m Mark) (Record, error) {
	if err := m.Validate(); err != nil {
		return Record{}, err
	}
	st, err := svc.students.GetStudentByID(m.StudentID)
	if err != nil {
		return Record{}, core.NewValidationError(err, core.FieldError{Field: "studentId", Error: "unknown student"})
	}

	r := Record{
		StudentID:   st.ID,
		StudentName: st.Name,
		Class:       st.Class,
		Date:        m.Date,
		Status:      m.Status,
		Course:      m.Course,
	}
	if r.Date == "" {
		r.Date = core.Today()
	}
	if r.Course == "" {
		r.Course = DefaultCourse
	}
	r, err = svc.repo.UpsertRecord(r)
	if err != nil {
		return Record{}, err
	}
	if err := svc.log.Record(fmt.Sprintf("Attendance marked for %s", st.Name), activity.TypeAttendance); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (svc *Service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllRecords()
}

func (svc *Service) GetByID(id string) (Record, error) {
	return svc.repo.GetRecordByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Record, error) {
	return svc.repo.FilterRecords(filter)
}

func (svc *Service) Delete(id string) error {
	r, err := svc.repo.GetRecordByID(id)
	if err != nil {
		return err
	}
	if err := svc.repo.DeleteRecordByID(id); err != nil {
		return err
	}
	return svc.log.Record(fmt.Sprintf("Attendance record removed for %s", r.StudentName), activity.TypeAttendance)
}
