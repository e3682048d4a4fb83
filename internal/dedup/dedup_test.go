package dedup

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeenIsTestAndSet(t *testing.T) {
	cache := NewCache(10)

	assert.False(t, cache.Seen("wamid.1"))
	assert.True(t, cache.Seen("wamid.1"))
	assert.False(t, cache.Seen("wamid.2"))
}

func TestEmptyIDNeverDeduplicated(t *testing.T) {
	cache := NewCache(10)

	assert.False(t, cache.Seen(""))
	assert.False(t, cache.Seen(""))
	assert.Equal(t, 0, cache.Len())
}

func TestCapacityTriggersReset(t *testing.T) {
	cache := NewCache(3)

	for i := 0; i < 3; i++ {
		cache.Seen(fmt.Sprintf("id-%d", i))
	}
	assert.Equal(t, 3, cache.Len())

	// Next new id exceeds the ceiling: the whole set resets first.
	assert.False(t, cache.Seen("id-3"))
	assert.Equal(t, 1, cache.Len())

	// Accepted trade-off: an old id can slip through after a reset.
	assert.False(t, cache.Seen("id-0"))
}

func TestConcurrentDeliveriesOfSameID(t *testing.T) {
	cache := NewCache(100)

	var passed int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !cache.Seen("wamid.race") {
				atomic.AddInt64(&passed, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), passed)
}
