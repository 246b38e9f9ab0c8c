package student

import (
	"github.com/edutrack/edutrack/core"
)

// Statuses
const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusGraduated = "Graduated"
)

// Student is a flat enrollment record. Class, section and roll number are
// plain strings matched by convention against courses and attendance.
type Student struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Class         string `json:"class"`
	Section       string `json:"section"`
	RollNumber    string `json:"rollNumber"`
	Status        string `json:"status"`
	Gender        string `json:"gender"`
	BloodGroup    string `json:"bloodGroup"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"dateOfBirth"`
	ParentName    string `json:"parentName"`
	ParentPhone   string `json:"parentPhone"`
	AdmissionDate string `json:"admissionDate"`
}

func (s Student) Key() string { return s.ID }

func (s Student) IsActive() bool { return s.Status == StatusActive }

// NewStudent contains information needed to register a new Student.
type NewStudent struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Class       string `json:"class" validate:"required"`
	Section     string `json:"section" validate:"required"`
	RollNumber  string `json:"rollNumber" validate:"required,alphanum_"`
	Gender      string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	BloodGroup  string `json:"bloodGroup"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth" validate:"date_"`
	ParentName  string `json:"parentName"`
	ParentPhone string `json:"parentPhone"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Phone = core.CleanString(ns.Phone)
	ns.RollNumber = core.CleanString(ns.RollNumber)
	return core.Validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// Empty fields are left unchanged.
type UpdateStudent struct {
	Name        string `json:"name"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Class       string `json:"class"`
	Section     string `json:"section"`
	RollNumber  string `json:"rollNumber" validate:"omitempty,alphanum_"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Inactive Graduated"`
	Address     string `json:"address"`
	ParentName  string `json:"parentName"`
	ParentPhone string `json:"parentPhone"`
}

func (us *UpdateStudent) Validate() error {
	us.Name = core.CleanString(us.Name)
	us.Email = core.CleanString(us.Email, true /* lower */)
	return core.Validate.Struct(us)
}

// QueryFilter fields are AND-combined; zero values are ignored.
// Search does a case-insensitive match on one of Student.ID, Student.Name or Student.Email.
type QueryFilter struct {
	Search  string `query:"search"`
	Class   string `query:"class"`
	Section string `query:"section"`
	Status  string `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Class == "" && qf.Section == "" && qf.Status == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
