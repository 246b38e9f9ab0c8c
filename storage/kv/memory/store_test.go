package memorykv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edutrack/edutrack/storage/kv"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := Open()

	_, err := store.Get(ctx, "missing")
	assert.Equal(t, kv.ErrNotFound, err)

	assert.NoError(t, store.Set(ctx, "slot", []byte(`[1,2,3]`)))

	got, err := store.Get(ctx, "slot")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), got)

	// the store must hold its own copy
	got[0] = 'X'
	again, err := store.Get(ctx, "slot")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), again)

	assert.NoError(t, store.Delete(ctx, "slot"))
	_, err = store.Get(ctx, "slot")
	assert.Equal(t, kv.ErrNotFound, err)

	// deleting a missing key is not an error
	assert.NoError(t, store.Delete(ctx, "slot"))
	assert.NoError(t, store.Close())
}
