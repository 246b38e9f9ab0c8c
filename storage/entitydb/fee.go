package entitydb

import (
	"context"
	"strings"

	"github.com/edutrack/edutrack/core/fee"
)

type feeRepository struct {
	col *collection[fee.Record]
}

var _ fee.Repository = (*feeRepository)(nil) // interface compliance check

func NewFeeRepository(db *DB) fee.Repository {
	return &feeRepository{col: db.fees}
}

func (repo *feeRepository) CreateRecord(r fee.Record) (fee.Record, error) {
	return repo.col.create(context.Background(), func(id string) fee.Record {
		r.ID = id
		return r
	})
}

func (repo *feeRepository) QueryAllRecords() ([]fee.Record, error) {
	return repo.col.all(), nil
}

func (repo *feeRepository) GetRecordByID(id string) (fee.Record, error) {
	if r, ok := repo.col.get(id); ok {
		return r, nil
	}
	return fee.Record{}, fee.ErrNotFound
}

func (repo *feeRepository) FilterRecords(filter fee.QueryFilter) ([]fee.Record, error) {
	search := strings.ToLower(filter.Search)
	return repo.col.filter(func(r fee.Record) bool {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.StudentID), search) &&
			!strings.Contains(strings.ToLower(r.StudentName), search) {
			return false
		}
		if filter.StudentID != "" && r.StudentID != filter.StudentID {
			return false
		}
		if filter.Status != "" && r.Status != filter.Status {
			return false
		}
		return true
	}), nil
}

func (repo *feeRepository) UpdateRecord(r fee.Record) (fee.Record, error) {
	found, err := repo.col.replace(context.Background(), r)
	if err != nil {
		return fee.Record{}, err
	}
	if !found {
		return fee.Record{}, fee.ErrNotFound
	}
	return r, nil
}

func (repo *feeRepository) DeleteRecordByID(id string) error {
	found, err := repo.col.remove(context.Background(), id)
	if err != nil {
		return err
	}
	if !found {
		return fee.ErrNotFound
	}
	return nil
}
