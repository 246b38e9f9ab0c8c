package entitydb

import (
	"context"

	"github.com/edutrack/edutrack/core/activity"
)

type activityRepository struct {
	col *collection[activity.Entry]
}

var _ activity.Repository = (*activityRepository)(nil) // interface compliance check

func NewActivityRepository(db *DB) activity.Repository {
	return &activityRepository{col: db.activity}
}

func (repo *activityRepository) PrependEntry(e activity.Entry) error {
	return repo.col.prepend(context.Background(), e, activity.MaxEntries)
}

func (repo *activityRepository) QueryAllEntries() ([]activity.Entry, error) {
	return repo.col.all(), nil
}
