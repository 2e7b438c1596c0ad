package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Expiracao(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStore().WithClock(func() time.Time { return now })

	require.NoError(t, store.Set(ctx, "rawData_Sheet1", [][]any{{"E1"}}, time.Minute))

	value, ok, err := store.Get(ctx, "rawData_Sheet1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [][]any{{"E1"}}, value)

	now = now.Add(time.Minute)

	_, ok, err = store.Get(ctx, "rawData_Sheet1")
	require.NoError(t, err)
	assert.False(t, ok, "entrada vencida não deve ser devolvida")

	entries, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, entries)
}

func TestMemoryStore_Flush(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Flush(ctx), "flush com o cache vazio")

	require.NoError(t, store.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, store.Set(ctx, "b", 2, time.Minute))
	require.NoError(t, store.Flush(ctx))
	require.NoError(t, store.Flush(ctx))

	entries, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, entries)
	assert.Equal(t, BackendMemory, store.Backend())
}
