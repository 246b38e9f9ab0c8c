package activity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("activity entry not found")

type (
	Repository interface {
		// PrependEntry inserts the entry at the head and drops anything past MaxEntries.
		PrependEntry(e Entry) error
		QueryAllEntries() ([]Entry, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends one feed entry describing a completed mutation.
// The mutation's own write has already been persisted by the time this runs.
func (svc *Service) Record(action, typ string) error {
	e := Entry{
		ID:     uuid.NewString(),
		Action: action,
		Time:   time.Now().UTC().Format(time.RFC3339),
		Type:   typ,
	}
	return svc.repo.PrependEntry(e)
}

func (svc *Service) QueryAll() ([]Entry, error) {
	return svc.repo.QueryAllEntries()
}
