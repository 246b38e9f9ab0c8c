package entitydb

import (
	"context"
	"strings"

	"github.com/edutrack/edutrack/core/course"
)

type courseRepository struct {
	col *collection[course.Course]
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{col: db.courses}
}

func (repo *courseRepository) CreateCourse(c course.Course) (course.Course, error) {
	return repo.col.create(context.Background(), func(id string) course.Course {
		c.ID = id
		return c
	})
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	return repo.col.all(), nil
}

func (repo *courseRepository) GetCourseByID(id string) (course.Course, error) {
	if c, ok := repo.col.get(id); ok {
		return c, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) FilterCourses(filter course.QueryFilter) ([]course.Course, error) {
	search := strings.ToLower(filter.Search)
	return repo.col.filter(func(c course.Course) bool {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Code), search) {
			return false
		}
		if filter.Class != "" && c.Class != filter.Class {
			return false
		}
		if filter.Faculty != "" && c.Faculty != filter.Faculty {
			return false
		}
		return true
	}), nil
}

func (repo *courseRepository) UpdateCourse(c course.Course) (course.Course, error) {
	found, err := repo.col.replace(context.Background(), c)
	if err != nil {
		return course.Course{}, err
	}
	if !found {
		return course.Course{}, course.ErrNotFound
	}
	return c, nil
}

func (repo *courseRepository) DeleteCourseByID(id string) error {
	found, err := repo.col.remove(context.Background(), id)
	if err != nil {
		return err
	}
	if !found {
		return course.ErrNotFound
	}
	return nil
}
