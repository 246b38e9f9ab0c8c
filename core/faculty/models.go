package faculty

import (
	"github.com/edutrack/edutrack/core"
)

// Statuses
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Faculty is a staff record. Courses reference it by display name only.
type Faculty struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Department    string `json:"department"`
	Subject       string `json:"subject"`
	Qualification string `json:"qualification"`
	Experience    string `json:"experience"`
	Status        string `json:"status"`
	JoiningDate   string `json:"joiningDate"`
}

func (f Faculty) Key() string { return f.ID }

// NewFaculty contains information needed to register a new Faculty member.
type NewFaculty struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Department    string `json:"department" validate:"required"`
	Subject       string `json:"subject" validate:"required"`
	Qualification string `json:"qualification"`
	Experience    string `json:"experience"`
}

func (nf *NewFaculty) Validate() error {
	nf.Name = core.CleanString(nf.Name)
	nf.Email = core.CleanString(nf.Email, true /* lower */)
	nf.Department = core.CleanString(nf.Department)
	nf.Subject = core.CleanString(nf.Subject)
	return core.Validate.Struct(nf)
}

// UpdateFaculty defines what information may be provided to modify an existing Faculty member.
type UpdateFaculty struct {
	Name          string `json:"name"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Department    string `json:"department"`
	Subject       string `json:"subject"`
	Qualification string `json:"qualification"`
	Experience    string `json:"experience"`
	Status        string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (uf *UpdateFaculty) Validate() error {
	uf.Name = core.CleanString(uf.Name)
	uf.Email = core.CleanString(uf.Email, true /* lower */)
	return core.Validate.Struct(uf)
}

// QueryFilter fields are AND-combined; zero values are ignored.
type QueryFilter struct {
	Search     string `query:"search"`
	Department string `query:"department"`
	Status     string `query:"status"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
