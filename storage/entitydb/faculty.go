package entitydb

import (
	"context"
	"strings"

	"github.com/edutrack/edutrack/core/faculty"
)

type facultyRepository struct {
	col *collection[faculty.Faculty]
}

var _ faculty.Repository = (*facultyRepository)(nil) // interface compliance check

func NewFacultyRepository(db *DB) faculty.Repository {
	return &facultyRepository{col: db.faculty}
}

func (repo *facultyRepository) CreateFaculty(f faculty.Faculty) (faculty.Faculty, error) {
	return repo.col.create(context.Background(), func(id string) faculty.Faculty {
		f.ID = id
		return f
	})
}

func (repo *facultyRepository) QueryAllFaculty() ([]faculty.Faculty, error) {
	return repo.col.all(), nil
}

func (repo *facultyRepository) GetFacultyByID(id string) (faculty.Faculty, error) {
	if f, ok := repo.col.get(id); ok {
		return f, nil
	}
	return faculty.Faculty{}, faculty.ErrNotFound
}

func (repo *facultyRepository) FilterFaculty(filter faculty.QueryFilter) ([]faculty.Faculty, error) {
	search := strings.ToLower(filter.Search)
	return repo.col.filter(func(f faculty.Faculty) bool {
		if search != "" &&
			!strings.Contains(strings.ToLower(f.Name), search) &&
			!strings.Contains(strings.ToLower(f.Email), search) &&
			!strings.Contains(strings.ToLower(f.Department), search) {
			return false
		}
		if filter.Department != "" && f.Department != filter.Department {
			return false
		}
		if filter.Status != "" && f.Status != filter.Status {
			return false
		}
		return true
	}), nil
}

func (repo *facultyRepository) UpdateFaculty(f faculty.Faculty) (faculty.Faculty, error) {
	found, err := repo.col.replace(context.Background(), f)
	if err != nil {
		return faculty.Faculty{}, err
	}
	if !found {
		return faculty.Faculty{}, faculty.ErrNotFound
	}
	return f, nil
}

func (repo *facultyRepository) DeleteFacultyByID(id string) error {
	found, err := repo.col.remove(context.Background(), id)
	if err != nil {
		return err
	}
	if !found {
		return faculty.ErrNotFound
	}
	return nil
}
