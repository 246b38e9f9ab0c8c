package grade

import (
	"errors"
	"fmt"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/core/activity"
	"github.com/edutrack/edutrack/core/student"
)

var ErrNotFound = errors.New("grade record not found")

type (
	Repository interface {
		// CreateRecord assigns the next free "GRDNNN" id and appends the record.
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
		Course:      nr.Course,
		ExamType:    nr.ExamType,
		Marks:       nr.Marks,
		TotalMarks:  nr.TotalMarks,
		Grade:       LetterFor(nr.Marks, nr.TotalMarks),
		Date:        nr.Date,
	}
	if r.Date == "" {
		r.Date = core.Today()
	}
	r, err = svc.repo.CreateRecord(r)
	if err != nil {
		return Record{}, err
	}
	if err := svc.log.Record(fmt.Sprintf("Grade %s entered for %s in %s", r.Grade, r.StudentName, r.Course), activity.TypeGrade); err != nil {
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

	if ur.ExamType != "" {
		r.ExamType = ur.ExamType
	}
	if ur.Marks != nil {
		r.Marks = *ur.Marks
	}
	if ur.TotalMarks != nil {
		r.TotalMarks = *ur.TotalMarks
	}
	if ur.Date != "" {
		r.Date = ur.Date
	}
	r.Grade = LetterFor(r.Marks, r.TotalMarks)

	r, err = svc.repo.UpdateRecord(r)
	if err != nil {
		return Record{}, err
	}
	if err := svc.log.Record(fmt.Sprintf("Grade updated for %s in %s", r.StudentName, r.Course), activity.TypeGrade); err != nil {
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
	return svc.log.Record(fmt.Sprintf("Grade removed for %s in %s", r.StudentName, r.Course), activity.TypeGrade)
}
