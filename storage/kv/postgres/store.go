// Package pgkv persists slots in a Postgres table.
package pgkv

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/edutrack/edutrack/storage/kv"
)

const schema = `
CREATE TABLE IF NOT EXISTS slots (
	key   TEXT PRIMARY KEY,
	value BYTEA NOT NULL
)`

type Store struct {
	db *sqlx.DB
}

var _ kv.Store = (*Store)(nil)

func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to postgres")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating slots table")
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var val []byte
	err := s.db.QueryRowxContext(ctx, "SELECT value FROM slots WHERE key = $1", key).Scan(&val)
	if err == sql.ErrNoRows {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading slot %s", key)
	}
	return val, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO slots (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key, value,
	)
	return errors.Wrapf(err, "writing slot %s", key)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM slots WHERE key = $1", key)
	return errors.Wrapf(err, "deleting slot %s", key)
}

func (s *Store) Close() error { return s.db.Close() }
