package entitydb

import (
	"context"
	"strings"

	"github.com/edutrack/edutrack/core/student"
)

type studentRepository struct {
	col *collection[student.Student]
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{col: db.students}
}

func (repo *studentRepository) CreateStudent(st student.Student) (student.Student, error) {
	return repo.col.create(context.Background(), func(id string) student.Student {
		st.ID = id
		return st
	})
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	return repo.col.all(), nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	if st, ok := repo.col.get(id); ok {
		return st, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudents(filter student.QueryFilter) ([]student.Student, error) {
	search := strings.ToLower(filter.Search)
	return repo.col.filter(func(st student.Student) bool {
		if search != "" &&
			!strings.Contains(strings.ToLower(st.ID), search) &&
			!strings.Contains(strings.ToLower(st.Name), search) &&
			!strings.Contains(strings.ToLower(st.Email), search) {
			return false
		}
		if filter.Class != "" && st.Class != filter.Class {
			return false
		}
		if filter.Section != "" && st.Section != filter.Section {
			return false
		}
		if filter.Status != "" && st.Status != filter.Status {
			return false
		}
		return true
	}), nil
}

func (repo *studentRepository) UpdateStudent(st student.Student) (student.Student, error) {
	found, err := repo.col.replace(context.Background(), st)
	if err != nil {
		return student.Student{}, err
	}
	if !found {
		return student.Student{}, student.ErrNotFound
	}
	return st, nil
}

func (repo *studentRepository) DeleteStudentByID(id string) error {
	found, err := repo.col.remove(context.Background(), id)
	if err != nil {
		return err
	}
	if !found {
		return student.ErrNotFound
	}
	return nil
}
