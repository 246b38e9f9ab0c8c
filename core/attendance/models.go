package attendance

import (
	"github.com/edutrack/edutrack/core"
)

// Statuses
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Record is one (student, date, course) attendance mark. Marking the same
// triple again replaces the earlier record, so at most one exists per triple.
type Record struct {
	ID          string `json:"id"`
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	Class       string `json:"class"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Course      string `json:"course"`
}

func (r Record) Key() string { return r.ID }

// Mark contains information needed to mark attendance.
type Mark struct {
	StudentID string `json:"studentId" validate:"required"`
	Date      string `json:"date" validate:"date_"`
	Status    string `json:"status" validate:"required,oneof=Present Absent"`
	Course    string `json:"course"`
}

func (m *Mark) Validate() error {
	m.StudentID = core.CleanString(m.StudentID)
	m.Course = core.CleanString(m.Course)
	return core.Validate.Struct(m)
}

// QueryFilter fields are AND-combined; zero values are ignored.
type QueryFilter struct {
	StudentID string `query:"student_id"`
	Class     string `query:"class"`
	Date      string `query:"date"`
	Status    string `query:"status"`
	Course    string `query:"course"`
}
