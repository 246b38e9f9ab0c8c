package fee

import (
	"errors"
	"fmt"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/core/activity"
	"github.com/edutrack/edutrack/core/student"
)

var ErrNotFound = errors.New("fee record not found")

type (
	Repository interface {
		// CreateRecord assigns the next free "FEENNN" id and appends the record.
		CreateRecord(r Record) (Record, error)
		QueryAllRecords() ([]Record, error)
		GetRecordByID(id string) (Record, error)
		FilterRecords(filter QueryFilter) ([]Record, error)
		UpdateRecord(r Record) (Record, error)
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

func (svc *Service) Create(nr NewRecord) (Record, error) {
	if err := nr.Validate(); err != nil {
		return Record{}, err
	}
	st, err := svc.students.GetStudentByID(nr.StudentID)
	if err != nil {
		return Record{}, core.NewValidationError(err, core.FieldError{Field: "studentId", Error: "unknown student"})
	}

	r := Record{
		StudentID:   st.ID,
		StudentName: st.Name,
		Semester:    nr.Semester,
		TotalAmount: nr.TotalAmount,
		PaidAmount:  nr.PaidAmount,
		DueDate:     nr.DueDate,
	}
	if r.PaidAmount > 0 {
		r.PaidDate = core.Today()
	}
	r.Derive()
	r, err = svc.repo.CreateRecord(r)
	if err != nil {
		return Record{}, err
	}
	if err := svc.log.Record(fmt.Sprintf("Fee record created for %s", r.StudentName), activity.TypeFee); err != nil {
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
	filter.Clean()
	return svc.repo.FilterRecords(filter)
}

func (svc *Service) Update(id string, ur UpdateRecord) (Record, error) {
	if err := ur.Validate(); err != nil {
		return Record{}, err
	}
	r, err := svc.repo.GetRecordByID(id)
	if err != nil {
		return Record{}, err
	}

	if ur.Semester != "" {
		r.Semester = ur.Semester
	}
	if ur.TotalAmount != nil {
		r.TotalAmount = *ur.TotalAmount
	}
	if ur.PaidAmount != nil {
		if *ur.PaidAmount > r.PaidAmount {
			r.PaidDate = core.Today()
		}
		r.PaidAmount = *ur.PaidAmount
	}
	if ur.DueDate != "" {
		r.DueDate = ur.DueDate
	}
	r.Derive()

	r, err = svc.repo.UpdateRecord(r)
	if err != nil {
		return Record{}, err
	}
	if err := svc.log.Record(fmt.Sprintf("Fee record updated for %s", r.StudentName), activity.TypeFee); err != nil {
		return Record{}, err
	}
	return r, nil
}

// RecordPayment adds a payment to the account and rederives balance and status.
func (svc *Service) RecordPayment(id string, p Payment) (Record, error) {
	if err := p.Validate(); err != nil {
		return Record{}, err
	}
	r, err := svc.repo.GetRecordByID(id)
	if err != nil {
		return Record{}, err
	}

	r.PaidAmount += p.Amount
	r.PaidDate = core.Today()
	r.Derive()

	r, err = svc.repo.UpdateRecord(r)
	if err != nil {
		return Record{}, err
	}
	if err := svc.log.Record(fmt.Sprintf("Fee payment received from %s", r.StudentName), activity.TypeFee); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (svc *Service) Delete(id string) error {
	r, err := svc.repo.GetRecordByID(id)
	if err != nil {
		return err
	}
	if err := svc.repo.DeleteRecordByID(id); err != nil {
		return err
	}
	return svc.log.Record(fmt.Sprintf("Fee record deleted for %s", r.StudentName), activity.TypeFee)
}
