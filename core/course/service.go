package course

import (
	"errors"
	"fmt"

	"github.com/edutrack/edutrack/core/activity"
)

var ErrNotFound = errors.New("course not found")

type (
	Repository interface {
		// CreateCourse assigns the next free "CNNN" id and appends the record.
		CreateCourse(c Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id string) (Course, error)
		FilterCourses(filter QueryFilter) ([]Course, error)
		UpdateCourse(c Course) (Course, error)
		DeleteCourseByID(id string) error
	}

	Service struct {
		repo Repository
		log  *activity.Service
	}
)

func NewService(repo Repository, log *activity.Service) *Service {
	return &Service{repo: repo, log: log}
}

func (svc *Service) Create(nc NewCourse) (Course, error) {
	if err := nc.Validate(); err != nil {
		return Course{}, err
	}
	c := Course{
		Name:        nc.Name,
		Code:        nc.Code,
		Credits:     nc.Credits,
		Faculty:     nc.Faculty,
		Class:       nc.Class,
		Description: nc.Description,
		Duration:    nc.Duration,
	}
	c, err := svc.repo.CreateCourse(c)
	if err != nil {
		return Course{}, err
	}
	if err := svc.log.Record(fmt.Sprintf("New course %s added", c.Name), activity.TypeCourse); err != nil {
		return Course{}, err
	}
	return c, nil
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) GetByID(id string) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Course, error) {
	filter.Clean()
	return svc.repo.FilterCourses(filter)
}

func (svc *Service) Update(id string, uc UpdateCourse) (Course, error) {
	if err := uc.Validate(); err != nil {
		return Course{}, err
	}
	c, err := svc.repo.GetCourseByID(id)
	if err != nil {
		return Course{}, err
	}

	if uc.Name != "" {
		c.Name = uc.Name
	}
	if uc.Code != "" {
		c.Code = uc.Code
	}
	if uc.Credits != 0 {
		c.Credits = uc.Credits
	}
	if uc.Faculty != "" {
		c.Faculty = uc.Faculty
	}
	if uc.Class != "" {
		c.Class = uc.Class
	}
	if uc.Description != "" {
		c.Description = uc.Description
	}
	if uc.Duration != "" {
		c.Duration = uc.Duration
	}

	c, err = svc.repo.UpdateCourse(c)
	if err != nil {
		return Course{}, err
	}
	if err := svc.log.Record(fmt.Sprintf("Course %s updated", c.Name), activity.TypeCourse); err != nil {
		return Course{}, err
	}
	return c, nil
}

func (svc *Service) Delete(id string) error {
	c, err := svc.repo.GetCourseByID(id)
	if err != nil {
		return err
	}
	if err := svc.repo.DeleteCourseByID(id); err != nil {
		return err
	}
	return svc.log.Record(fmt.Sprintf("Course %s deleted", c.Name), activity.TypeCourse)
}
