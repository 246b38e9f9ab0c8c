package entitydb

import (
	"context"
	"strings"

	"github.com/edutrack/edutrack/core/grade"
)

type gradeRepository struct {
	col *collection[grade.Record]
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{col: db.grades}
}

func (repo *gradeRepository) CreateRecord(r grade.Record) (grade.Record, error) {
	return repo.col.create(context.Background(), func(id string) grade.Record {
		r.ID = id
		return r
	})
}

func (repo *gradeRepository) QueryAllRecords() ([]grade.Record, error) {
	return repo.col.all(), nil
}

func (repo *gradeRepository) GetRecordByID(id string) (grade.Record, error) {
	if r, ok := repo.col.get(id); ok {
		return r, nil
	}
	return grade.Record{}, grade.ErrNotFound
}

func (repo *gradeRepository) FilterRecords(filter grade.QueryFilter) ([]grade.Record, error) {
	search := strings.ToLower(filter.Search)
	return repo.col.filter(func(r grade.Record) bool {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.StudentID), search) &&
			!strings.Contains(strings.ToLower(r.StudentName), search) {
			return false
		}
		if filter.StudentID != "" && r.StudentID != filter.StudentID {
			return false
		}
		if filter.Course != "" && r.Course != filter.Course {
			return false
		}
		return true
	}), nil
}

func (repo *gradeRepository) UpdateRecord(r grade.Record) (grade.Record, error) {
	found, err := repo.col.replace(context.Background(), r)
	if err != nil {
		return grade.Record{}, err
	}
	if !found {
		return grade.Record{}, grade.ErrNotFound
	}
	return r, nil
}

func (repo *gradeRepository) DeleteRecordByID(id string) error {
	found, err := repo.col.remove(context.Background(), id)
	if err != nil {
		return err
	}
	if !found {
		return grade.ErrNotFound
	}
	return nil
}
