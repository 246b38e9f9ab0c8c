package grade

import (
	"github.com/edutrack/edutrack/core"
)

// Record is one exam result. Grade is recomputed from Marks/TotalMarks on
// every write; StudentName is denormalized for display.
type Record struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"studentId"`
	StudentName string  `json:"studentName"`
	Course      string  `json:"course"`
	ExamType    string  `json:"examType"`
	Marks       float64 `json:"marks"`
	TotalMarks  float64 `json:"totalMarks"`
	Grade       string  `json:"grade"`
	Date        string  `json:"date"`
}

func (r Record) Key() string { return r.ID }

// Percentage returns Marks over TotalMarks as a percentage, 0 when TotalMarks is 0.
func (r Record) Percentage() float64 {
	if r.TotalMarks == 0 {
		return 0
	}
	return r.Marks / r.TotalMarks * 100
}

// LetterFor maps a marks/totalMarks pair to a letter grade.
// Boundaries are inclusive: exactly 90% is an A+.
func LetterFor(marks, totalMarks float64) string {
	var pct float64
	if totalMarks > 0 {
		pct = marks / totalMarks * 100
	}
	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B+"
	case pct >= 60:
		return "B"
	case pct >= 50:
		return "C"
	case pct >= 40:
		return "D"
	default:
		return "F"
	}
}

// NewRecord contains information needed to enter a new grade.
type NewRecord struct {
	StudentID  string  `json:"studentId" validate:"required"`
	Course     string  `json:"course" validate:"required"`
	ExamType   string  `json:"examType"`
	Marks      float64 `json:"marks" validate:"min=0"`
	TotalMarks float64 `json:"totalMarks" validate:"required,gt=0,gtefield=Marks"`
	Date       string  `json:"date" validate:"date_"`
}

func (nr *NewRecord) Validate() error {
	nr.StudentID = core.CleanString(nr.StudentID)
	nr.Course = core.CleanString(nr.Course)
	return core.Validate.Struct(nr)
}

// UpdateRecord defines what may be changed on an existing grade.
// Marks/TotalMarks are pointers so a legitimate zero can be distinguished from "unchanged".
type UpdateRecord struct {
	ExamType   string   `json:"examType"`
	Marks      *float64 `json:"marks"`
	TotalMarks *float64 `json:"totalMarks"`
	Date       string   `json:"date" validate:"date_"`
}

func (ur *UpdateRecord) Validate() error {
	if err := core.Validate.Struct(ur); err != nil {
		return err
	}
	if ur.Marks != nil && *ur.Marks < 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "marks", Error: "must not be negative"})
	}
	if ur.TotalMarks != nil && *ur.TotalMarks <= 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "totalMarks", Error: "must be greater than zero"})
	}
	return nil
}

// QueryFilter fields are AND-combined; zero values are ignored.
// Search matches Record.StudentID or Record.StudentName case-insensitively.
type QueryFilter struct {
	Search    string `query:"search"`
	StudentID string `query:"student_id"`
	Course    string `query:"course"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
