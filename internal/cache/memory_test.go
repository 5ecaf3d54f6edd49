package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	_, err := c.Get(ctx, "missing")
	assert.True(t, IsNotFound(err))

	require.NoError(t, c.Set(ctx, "articles:1", `{"id":1}`, time.Minute))
	got, err := c.Get(ctx, "articles:1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, got)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory().(*memoryClient)
	now := time.Now()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	now = now.Add(59 * time.Second)
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	now = now.Add(2 * time.Second)
	_, err = c.Get(ctx, "k")
	assert.True(t, IsNotFound(err))
}

func TestMemoryZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	c := NewMemory().(*memoryClient)
	now := time.Now()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	now = now.Add(24 * time.Hour)
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	require.NoError(t, c.Set(ctx, "k", "v", 0))
	require.NoError(t, c.Delete(ctx, "k"))
	_, err := c.Get(ctx, "k")
	assert.True(t, IsNotFound(err))
}

func TestNewFallsBackToMemory(t *testing.T) {
	c, err := New(Config{Driver: "memory"})
	require.NoError(t, err)
	assert.NoError(t, c.Ping(context.Background()))
}
