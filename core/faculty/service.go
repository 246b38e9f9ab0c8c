package faculty

import (
	"errors"
	"fmt"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/core/activity"
)

var ErrNotFound = errors.New("faculty not found")

type (
	Repository interface {
		// CreateFaculty assigns the next free "FNNN" id and appends the record.
		CreateFaculty(f Faculty) (Faculty, error)
		QueryAllFaculty() ([]Faculty, error)
		GetFacultyByID(id string) (Faculty, error)
		FilterFaculty(filter QueryFilter) ([]Faculty, error)
		UpdateFaculty(f Faculty) (Faculty, error)
		DeleteFacultyByID(id string) error
	}

	Service struct {
		repo Repository
		log  *activity.Service
	}
)

func NewService(repo Repository, log *activity.Service) *Service {
	return &Service{repo: repo, log: log}
}

func (svc *Service) Create(nf NewFaculty) (Faculty, error) {
	if err := nf.Validate(); err != nil {
		return Faculty{}, err
	}
	f := Faculty{
		Name:          nf.Name,
		Email:         nf.Email,
		Phone:         nf.Phone,
		Department:    nf.Department,
		Subject:       nf.Subject,
		Qualification: nf.Qualification,
		Experience:    nf.Experience,
		Status:        StatusActive,
		JoiningDate:   core.Today(),
	}
	f, err := svc.repo.CreateFaculty(f)
	if err != nil {
		return Faculty{}, err
	}
	if err := svc.log.Record(fmt.Sprintf("New faculty %s added", f.Name), activity.TypeFaculty); err != nil {
		return Faculty{}, err
	}
	return f, nil
}

func (svc *Service) QueryAll() ([]Faculty, error) {
	return svc.repo.QueryAllFaculty()
}

func (svc *Service) GetByID(id string) (Faculty, error) {
	return svc.repo.GetFacultyByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Faculty, error) {
	filter.Clean()
	return svc.repo.FilterFaculty(filter)
}

func (svc *Service) Update(id string, uf UpdateFaculty) (Faculty, error) {
	if err := uf.Validate(); err != nil {
		return Faculty{}, err
	}
	f, err := svc.repo.GetFacultyByID(id)
	if err != nil {
		return Faculty{}, err
	}

	if uf.Name != "" {
		f.Name = uf.Name
	}
	if uf.Email != "" {
		f.Email = uf.Email
	}
	if uf.Phone != "" {
		f.Phone = uf.Phone
	}
	if uf.Department != "" {
		f.Department = uf.Department
	}
	if uf.Subject != "" {
		f.Subject = uf.Subject
	}
	if uf.Qualification != "" {
		f.Qualification = uf.Qualification
	}
	if uf.Experience != "" {
		f.Experience = uf.Experience
	}
	if uf.Status != "" {
		f.Status = uf.Status
	}

	f, err = svc.repo.UpdateFaculty(f)
	if err != nil {
		return Faculty{}, err
	}
	if err := svc.log.Record(fmt.Sprintf("Faculty %s updated", f.Name), activity.TypeFaculty); err != nil {
		return Faculty{}, err
	}
	return f, nil
}

func (svc *Service) Delete(id string) error {
	f, err := svc.repo.GetFacultyByID(id)
	if err != nil {
		return err
	}
	if err := svc.repo.DeleteFacultyByID(id); err != nil {
		return err
	}
	return svc.log.Record(fmt.Sprintf("Faculty %s deleted", f.Name), activity.TypeFaculty)
}
