package entitydb

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/storage/kv"
)

type keyed interface {
	Key() string
}

// collection is one entity kind's ordered working set, backed by a single
// persistence slot. Every mutation rewrites the whole slot before
// returning; a failed write rolls the in-memory set back so the caller
// observes no partial state.
type collection[T keyed] struct {
	mu     sync.RWMutex
	slot   string
	prefix string // id prefix, e.g. "S"
	width  int    // zero-padded sequence width
	store  kv.Store
	logger core.Logger
	items  []T
}

func newCollection[T keyed](store kv.Store, logger core.Logger, slot, prefix string, width int) *collection[T] {
	return &collection[T]{
		slot:   slot,
		prefix: prefix,
		width:  width,
		store:  store,
		logger: logger,
	}
}

// load replaces the working set with the slot contents. An absent slot and
// an unparsable slot both yield an empty set; neither is an error.
func (c *collection[T]) load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.store.Get(ctx, c.slot)
	if errors.Cause(err) == kv.ErrNotFound {
		c.items = nil
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "loading slot %s", c.slot)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Info(fmt.Sprintf("slot %s holds unparsable data; starting empty", c.slot))
		c.items = nil
		return nil
	}
	c.items = items
	return nil
}

// persist serializes the whole working set into the slot. Callers must hold the write lock.
func (c *collection[T]) persist(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "serializing slot %s", c.slot)
	}
	if err := c.store.Set(ctx, c.slot, data); err != nil {
		return errors.Wrapf(err, "persisting slot %s", c.slot)
	}
	return nil
}

// nextID returns the first free prefix+sequence id, starting the probe at
// len+1. Deletions can leave the tail id taken, hence the walk.
func (c *collection[T]) nextID() string {
	taken := make(map[string]bool, len(c.items))
	for _, item := range c.items {
		taken[item.Key()] = true
	}
	for n := len(c.items) + 1; ; n++ {
		id := fmt.Sprintf("%s%0*d", c.prefix, c.width, n)
		if !taken[id] {
			return id
		}
	}
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

func (c *collection[T]) length() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matched := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if pred(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// create assigns a fresh id, appends the built record and persists.
func (c *collection[T]) create(ctx context.Context, build func(id string) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := build(c.nextID())
	c.items = append(c.items, item)
	if err := c.persist(ctx); err != nil {
		c.items = c.items[:len(c.items)-1]
		var zero T
		return zero, err
	}
	return item, nil
}

// replace swaps the record with the same id in place and persists.
func (c *collection[T]) replace(ctx context.Context, item T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.Key() != item.Key() {
			continue
		}
		c.items[i] = item
		if err := c.persist(ctx); err != nil {
			c.items[i] = existing
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// upsert replaces the first record matching pred, keeping its id, or
// appends a fresh record when nothing matches.
func (c *collection[T]) upsert(ctx context.Context, pred func(T) bool, build func(id string) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if !pred(existing) {
			continue
		}
		item := build(existing.Key())
		c.items[i] = item
		if err := c.persist(ctx); err != nil {
			c.items[i] = existing
			var zero T
			return zero, err
		}
		return item, nil
	}

	item := build(c.nextID())
	c.items = append(c.items, item)
	if err := c.persist(ctx); err != nil {
		c.items = c.items[:len(c.items)-1]
		var zero T
		return zero, err
	}
	return item, nil
}

// remove deletes the record with the given id and persists.
func (c *collection[T]) remove(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.Key() != id {
			continue
		}
		c.items = append(c.items[:i], c.items[i+1:]...)
		if err := c.persist(ctx); err != nil {
			c.items = append(c.items[:i], append([]T{existing}, c.items[i:]...)...)
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// prepend inserts at the head, truncating to cap, and persists.
func (c *collection[T]) prepend(ctx context.Context, item T, max int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.items
	c.items = append([]T{item}, c.items...)
	if len(c.items) > max {
		c.items = c.items[:max]
	}
	if err := c.persist(ctx); err != nil {
		c.items = prev
		return err
	}
	return nil
}

// reset replaces the whole working set and persists; used by seeding.
func (c *collection[T]) reset(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.items
	c.items = items
	if err := c.persist(ctx); err != nil {
		c.items = prev
		return err
	}
	return nil
}
