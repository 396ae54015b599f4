package rendercache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetAndGet(t *testing.T) {
	c := New[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	ctx := context.Background()

	c.Set(ctx, "sequential|80|dark", "rendered", 0)

	got, ok := c.Get(ctx, "sequential|80|dark")
	require.True(t, ok)
	assert.Equal(t, "rendered", got)
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := New[string, string]("test", DefaultExpiration, DefaultCleanupInterval)

	_, ok := c.Get(context.Background(), "missing")
	assert.False(t, ok)
}

func TestCache_FlushDropsEntries(t *testing.T) {
	c := New[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	ctx := context.Background()

	c.Set(ctx, "a", "1", 0)
	c.Set(ctx, "b", "2", 0)
	require.NoError(t, c.Flush(ctx))

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "b")
	assert.False(t, ok)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	ctx := context.Background()

	c.Set(ctx, "short", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get(ctx, "short")
	assert.False(t, ok)
}

func TestCache_DistinctKeyTypes(t *testing.T) {
	type renderKey string
	c := New[renderKey, int]("test", DefaultExpiration, DefaultCleanupInterval)
	ctx := context.Background()

	c.Set(ctx, renderKey("k"), 7, 0)
	got, ok := c.Get(ctx, renderKey("k"))
	require.True(t, ok)
	assert.Equal(t, 7, got)
}
