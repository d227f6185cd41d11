package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string](15 * time.Minute)

	_, fresh, ok := c.Get("missing")
	assert.False(t, ok)
	assert.False(t, fresh)

	c.Set("key", "value")
	val, fresh, ok := c.Get("key")
	assert.True(t, ok)
	assert.True(t, fresh)
	assert.Equal(t, "value", val)
	assert.Equal(t, 1, c.Len())
}

func TestCache_StaleEntryStillReturned(t *testing.T) {
	c := New[int](15 * time.Minute)

	current := time.Now()
	c.now = func() time.Time { return current }
	c.Set("key", 42)

	// move past the TTL, entry must survive as stale
	current = current.Add(16 * time.Minute)
	val, fresh, ok := c.Get("key")
	assert.True(t, ok)
	assert.False(t, fresh)
	assert.Equal(t, 42, val)

	// refresh resets the capture time
	c.Set("key", 43)
	val, fresh, ok = c.Get("key")
	assert.True(t, ok)
	assert.True(t, fresh)
	assert.Equal(t, 43, val)
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int](time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			c.Set("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			c.Get("shared")
		}()
	}
	wg.Wait()

	_, _, ok := c.Get("shared")
	assert.True(t, ok)
}
