package entitydb

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/edutrack/edutrack/core/session"
	"github.com/edutrack/edutrack/storage/kv"
)

type sessionRepository struct {
	db *DB
}

var _ session.Repository = (*sessionRepository)(nil) // interface compliance check

func NewSessionRepository(db *DB) session.Repository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) SaveIdentity(i session.Identity) error {
	data, err := json.Marshal(i)
	if err != nil {
		return errors.Wrap(err, "serializing identity")
	}
	return repo.db.store.Set(context.Background(), slotIdentity, data)
}

func (repo *sessionRepository) LoadIdentity() (session.Identity, error) {
	data, err := repo.db.store.Get(context.Background(), slotIdentity)
	if errors.Cause(err) == kv.ErrNotFound {
		return session.Identity{}, nil
	}
	if err != nil {
		return session.Identity{}, errors.Wrap(err, "loading identity")
	}

	var ident session.Identity
	if err := json.Unmarshal(data, &ident); err != nil {
		repo.db.logger.Info("identity slot holds unparsable data; treating as logged out")
		return session.Identity{}, nil
	}
	return ident, nil
}

func (repo *sessionRepository) ClearIdentity() error {
	return repo.db.store.Delete(context.Background(), slotIdentity)
}
