// Package kv defines the persistence-slot contract: a named durable slot
// holds one opaque serialized value, written whole on every save.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the slot has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Store is a flat key-value slot store. Set overwrites the whole slot;
// there is no atomicity guarantee across keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
