package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLRU(t *testing.T) {
	tests := []struct {
		name        string
		maxSize     int
		expectedMax int
	}{
		{name: "positive max size", maxSize: 10, expectedMax: 10},
		{name: "zero max size uses default", maxSize: 0, expectedMax: DefaultSize},
		{name: "negative max size uses default", maxSize: -1, expectedMax: DefaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRU(tt.maxSize)
			assert.Equal(t, tt.expectedMax, c.Stats().MaxSize)
			assert.Zero(t, c.Len())
		})
	}
}

func TestLRU_BasicOperations(t *testing.T) {
	c := NewLRU(3)

	c.Set("light", "rendered light")
	value, ok := c.Get("light")
	assert.True(t, ok)
	assert.Equal(t, "rendered light", value)

	value, ok = c.Get("dark")
	assert.False(t, ok)
	assert.Empty(t, value)

	c.Set("light", "rerendered")
	value, _ = c.Get("light")
	assert.Equal(t, "rerendered", value)
	assert.Equal(t, 1, c.Len())

	c.Delete("light")
	_, ok = c.Get("light")
	assert.False(t, ok)
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU(2)

	c.Set("a", "1")
	c.Set("b", "2")
	_, _ = c.Get("a")
	c.Set("c", "3")

	_, ok := c.Get("b")
	assert.False(t, ok, "b was least recently used")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_ClearAndStats(t *testing.T) {
	c := NewLRU(4)

	c.Set("a", "1")
	_, _ = c.Get("a")
	_, _ = c.Get("missing")

	assert.Equal(t, Stats{Size: 1, MaxSize: 4, Hits: 1, Misses: 1}, c.Stats())

	c.Clear()
	assert.Zero(t, c.Len())
	c.Set("b", "2")
	value, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", value)
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU(16)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := strconv.Itoa((id + j) % 32)
				c.Set(key, key)
				if value, ok := c.Get(key); ok {
					assert.Equal(t, key, value)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 16)
}
