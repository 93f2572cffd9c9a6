package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonotonicClock_Now_FollowsWallClock(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	current := base
	c := NewMonotonicClockWithSource(func() time.Time { return current })

	assert.Equal(t, base, c.Now())

	current = base.Add(time.Second)
	assert.Equal(t, base.Add(time.Second), c.Now())
}

func TestMonotonicClock_Now_StrictlyIncreasing(t *testing.T) {
	frozen := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	c := NewMonotonicClockWithSource(func() time.Time { return frozen })

	previous := c.Now()
	for i := 0; i < 100; i++ {
		current := c.Now()
		assert.True(t, current.After(previous), "Now should always increase")
		previous = current
	}
	assert.Equal(t, frozen.Add(100*time.Nanosecond), previous)
}

func TestMonotonicClock_Now_WallClockGoesBack(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	current := base
	c := NewMonotonicClockWithSource(func() time.Time { return current })

	first := c.Now()
	current = base.Add(-time.Hour)
	second := c.Now()

	assert.True(t, second.After(first))
	assert.Equal(t, first.Add(time.Nanosecond), second)
}

func TestMonotonicClock_Observe(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	c := NewMonotonicClockWithSource(func() time.Time { return base })

	stored := base.Add(time.Minute)
	c.Observe(stored)
	assert.Equal(t, stored, c.Last())

	// Наблюдение более старой метки не откатывает часы
	c.Observe(base.Add(-time.Hour))
	assert.Equal(t, stored, c.Last())

	assert.Equal(t, stored.Add(time.Nanosecond), c.Now())
}

func TestMonotonicClock_Concurrent(t *testing.T) {
	c := NewMonotonicClock()

	const goroutines = 10
	const perGoroutine = 100

	results := make(chan time.Time, goroutines*perGoroutine)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				results <- c.Now()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]struct{}, goroutines*perGoroutine)
	for ts := range results {
		_, dup := seen[ts.UnixNano()]
		require.False(t, dup, "duplicate timestamp %v", ts)
		seen[ts.UnixNano()] = struct{}{}
	}
	assert.Len(t, seen, goroutines*perGoroutine)
}
