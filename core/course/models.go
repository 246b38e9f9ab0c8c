package course

import (
	"github.com/edutrack/edutrack/core"
)

// Course is a catalog entry. Faculty holds the instructor's display name,
// matched against faculty records by convention only.
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Credits     int    `json:"credits"`
	Faculty     string `json:"faculty"`
	Class       string `json:"class"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

func (c Course) Key() string { return c.ID }

// NewCourse contains information needed to add a new Course.
type NewCourse struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Credits     int    `json:"credits" validate:"required,min=1,max=10"`
	Faculty     string `json:"faculty" validate:"required"`
	Class       string `json:"class" validate:"required"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

func (nc *NewCourse) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Code = core.CleanString(nc.Code)
	nc.Faculty = core.CleanString(nc.Faculty)
	return core.Validate.Struct(nc)
}

// UpdateCourse defines what information may be provided to modify an existing Course.
type UpdateCourse struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Credits     int    `json:"credits" validate:"omitempty,min=1,max=10"`
	Faculty     string `json:"faculty"`
	Class       string `json:"class"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

func (uc *UpdateCourse) Validate() error {
	uc.Name = core.CleanString(uc.Name)
	uc.Code = core.CleanString(uc.Code)
	return core.Validate.Struct(uc)
}

// QueryFilter fields are AND-combined; zero values are ignored.
type QueryFilter struct {
	Search  string `query:"search"`
	Class   string `query:"class"`
	Faculty string `query:"faculty"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
