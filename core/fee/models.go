package fee

import (
	"github.com/edutrack/edutrack/core"
)

// Statuses, derived from the paid/total ratio; never set directly.
const (
	StatusPaid    = "Paid"
	StatusPartial = "Partial"
	StatusPending = "Pending"
)

// Record is one student fee account. PendingAmount and Status are derived
// from TotalAmount/PaidAmount on every write.
type Record struct {
	ID            string  `json:"id"`
	StudentID     string  `json:"studentId"`
	StudentName   string  `json:"studentName"`
	Semester      string  `json:"semester"`
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	PendingAmount float64 `json:"pendingAmount"`
	Status        string  `json:"status"`
	DueDate       string  `json:"dueDate"`
	PaidDate      string  `json:"paidDate"`
}

func (r Record) Key() string { return r.ID }

// Derive recomputes PendingAmount and Status.
// Thresholds are exact: paid >= total is Paid, paid == 0 is Pending, anything between is Partial.
func (r *Record) Derive() {
	r.PendingAmount = r.TotalAmount - r.PaidAmount
	switch {
	case r.PaidAmount >= r.TotalAmount:
		r.Status = StatusPaid
	case r.PaidAmount > 0:
		r.Status = StatusPartial
	default:
		r.Status = StatusPending
	}
}

// NewRecord contains information needed to open a fee account.
type NewRecord struct {
	StudentID   string  `json:"studentId" validate:"required"`
	Semester    string  `json:"semester"`
	TotalAmount float64 `json:"totalAmount" validate:"required,gt=0"`
	PaidAmount  float64 `json:"paidAmount" validate:"min=0"`
	DueDate     string  `json:"dueDate" validate:"date_"`
}

func (nr *NewRecord) Validate() error {
	nr.StudentID = core.CleanString(nr.StudentID)
	if err := core.Validate.Struct(nr); err != nil {
		return err
	}
	if nr.PaidAmount > nr.TotalAmount {
		return core.NewValidationError(nil, core.FieldError{Field: "paidAmount", Error: "must not exceed totalAmount"})
	}
	return nil
}

// UpdateRecord defines what may be changed on an existing fee account.
// Amounts are pointers so a legitimate zero can be distinguished from "unchanged".
type UpdateRecord struct {
	Semester    string   `json:"semester"`
	TotalAmount *float64 `json:"totalAmount"`
	PaidAmount  *float64 `json:"paidAmount"`
	DueDate     string   `json:"dueDate" validate:"date_"`
}

func (ur *UpdateRecord) Validate() error {
	if err := core.Validate.Struct(ur); err != nil {
		return err
	}
	if ur.TotalAmount != nil && *ur.TotalAmount <= 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "totalAmount", Error: "must be greater than zero"})
	}
	if ur.PaidAmount != nil && *ur.PaidAmount < 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "paidAmount", Error: "must not be negative"})
	}
	return nil
}

// Payment is one incoming payment against a fee account.
type Payment struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func (p *Payment) Validate() error { return core.Validate.Struct(p) }

// QueryFilter fields are AND-combined; zero values are ignored.
type QueryFilter struct {
	Search    string `query:"search"`
	StudentID string `query:"student_id"`
	Status    string `query:"status"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
