// Package rediskv persists slots in Redis, for deployments that want the
// store shared across hosts.
package rediskv

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/edutrack/edutrack/storage/kv"
)

type Store struct {
	client *redis.Client
}

var _ kv.Store = (*Store)(nil)

func Open(ctx context.Context, addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "pinging redis")
	}
	return &Store{client: client}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading slot %s", key)
	}
	return val, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return errors.Wrapf(s.client.Set(ctx, key, value, 0).Err(), "writing slot %s", key)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(s.client.Del(ctx, key).Err(), "deleting slot %s", key)
}

func (s *Store) Close() error { return s.client.Close() }
