package student

import (
	"errors"
	"fmt"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/core/activity"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		// CreateStudent assigns the next free "SNNN" id and appends the record.
		CreateStudent(s Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		// FilterStudents applies AND operation on available QueryFilter fields.
		FilterStudents(filter QueryFilter) ([]Student, error)
		UpdateStudent(s Student) (Student, error)
		DeleteStudentByID(id string) error
	}

	Service struct {
		repo Repository
		log  *activity.Service
	}
)

func NewService(repo Repository, log *activity.Service) *Service {
	return &Service{repo: repo, log: log}
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}
	st := Student{
		Name:          ns.Name,
		Email:         ns.Email,
		Phone:         ns.Phone,
		Class:         ns.Class,
		Section:       ns.Section,
		RollNumber:    ns.RollNumber,
		Gender:        ns.Gender,
		BloodGroup:    ns.BloodGroup,
		Address:       ns.Address,
		DateOfBirth:   ns.DateOfBirth,
		ParentName:    ns.ParentName,
		ParentPhone:   ns.ParentPhone,
		Status:        StatusActive,
		AdmissionDate: core.Today(),
	}
	st, err := svc.repo.CreateStudent(st)
	if err != nil {
		return Student{}, err
	}
	if err := svc.log.Record(fmt.Sprintf("New student %s added", st.Name), activity.TypeStudent); err != nil {
		return Student{}, err
	}
	return st, nil
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Student, error) {
	filter.Clean()
	return svc.repo.FilterStudents(filter)
}

func (svc *Service) Update(id string, us UpdateStudent) (Student, error) {
	if err := us.Validate(); err != nil {
		return Student{}, err
	}
	st, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}

	if us.Name != "" {
		st.Name = us.Name
	}
	if us.Email != "" {
		st.Email = us.Email
	}
	if us.Phone != "" {
		st.Phone = us.Phone
	}
	if us.Class != "" {
		st.Class = us.Class
	}
	if us.Section != "" {
		st.Section = us.Section
	}
	if us.RollNumber != "" {
		st.RollNumber = us.RollNumber
	}
	if us.Status != "" {
		st.Status = us.Status
	}
	if us.Address != "" {
		st.Address = us.Address
	}
	if us.ParentName != "" {
		st.ParentName = us.ParentName
	}
	if us.ParentPhone != "" {
		st.ParentPhone = us.ParentPhone
	}

	st, err = svc.repo.UpdateStudent(st)
	if err != nil {
		return Student{}, err
	}
	if err := svc.log.Record(fmt.Sprintf("Student %s updated", st.Name), activity.TypeStudent); err != nil {
		return Student{}, err
	}
	return st, nil
}

func (svc *Service) Delete(id string) error {
	st, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return err
	}
	if err := svc.repo.DeleteStudentByID(id); err != nil {
		return err
	}
	return svc.log.Record(fmt.Sprintf("Student %s deleted", st.Name), activity.TypeStudent)
}
