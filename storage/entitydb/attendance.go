package entitydb

import (
	"context"

	"github.com/edutrack/edutrack/core/attendance"
)

type attendanceRepository struct {
	col *collection[attendance.Record]
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{col: db.attendance}
}

func (repo *attendanceRepository) UpsertRecord(r attendance.Record) (attendance.Record, error) {
	return repo.col.upsert(context.Background(),
		func(existing attendance.Record) bool {
			return existing.StudentID == r.StudentID &&
				existing.Date == r.Date &&
				existing.Course == r.Course
		},
		func(id string) attendance.Record {
			r.ID = id
			return r
		},
	)
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	return repo.col.all(), nil
}

func (repo *attendanceRepository) GetRecordByID(id string) (attendance.Record, error) {
	if r, ok := repo.col.get(id); ok {
		return r, nil
	}
	return attendance.Record{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) FilterRecords(filter attendance.QueryFilter) ([]attendance.Record, error) {
	return repo.col.filter(func(r attendance.Record) bool {
		if filter.StudentID != "" && r.StudentID != filter.StudentID {
			return false
		}
		if filter.Class != "" && r.Class != filter.Class {
			return false
		}
		if filter.Date != "" && r.Date != filter.Date {
			return false
		}
		if filter.Status != "" && r.Status != filter.Status {
			return false
		}
		if filter.Course != "" && r.Course != filter.Course {
			return false
		}
		return true
	}), nil
}

func (repo *attendanceRepository) DeleteRecordByID(id string) error {
	found, err := repo.col.remove(context.Background(), id)
	if err != nil {
		return err
	}
	if !found {
		return attendance.ErrNotFound
	}
	return nil
}
