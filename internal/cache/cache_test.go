package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetSet(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get("/dashboard/events")
	assert.False(t, ok)

	c.Set("/dashboard/events", []string{"a", "b"})

	v, ok := c.Get("/dashboard/events")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("key", 1)

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestInvalidate(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	c.Invalidate("a", "b")

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestPurge(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.Set("stale", 1)

	time.Sleep(20 * time.Millisecond)
	c.Set("fresh", 2)

	c.Purge()

	_, ok := c.Get("fresh")
	assert.True(t, ok)

	c.mu.RLock()
	_, exists := c.entries["stale"]
	c.mu.RUnlock()
	assert.False(t, exists)
}
