package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStore_SetGet(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "k", 42)
	value, ok := store.Get(ctx, "k")
	require.True(t, ok)
	require.Equal(t, 42, value)

	store.Delete(ctx, "k")
	_, ok = store.Get(ctx, "k")
	require.False(t, ok, "expected key to be gone after Delete")
}

func TestStore_ExpiredEntryIsMiss(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Nanosecond)
	ctx := context.Background()

	store.Set(ctx, "k", "v")
	time.Sleep(5 * time.Millisecond)

	_, ok := store.Get(ctx, "k")
	require.False(t, ok, "expected expired entry to miss")
}

func TestStore_GetOrLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		return "fresh", nil
	}

	for i := 0; i < 3; i++ {
		value, err := store.GetOrLoad(ctx, "k", loader)
		require.NoError(t, err)
		require.Equal(t, "fresh", value)
	}
	require.Equal(t, 1, loads, "loader should run once and then hit the cache")
}

func TestStore_GetOrLoad_ErrorNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	wantErr := errors.New("load failed")
	_, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		return nil, wantErr
	})
	require.ErrorIs(t, err, wantErr)

	value, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", value)
}
