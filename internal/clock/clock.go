// Package clock выдает строго возрастающие временные метки для версий.
package clock

import (
	"sync"
	"time"
)

// Clock is the timestamp source used by the save path.
type Clock interface {
	Now() time.Time
}

// MonotonicClock — гибрид физических часов и счетчика Лампорта.
// Каждый вызов Now возвращает метку строго больше всех предыдущих, даже если
// системное время стоит на месте или откатилось назад.
type MonotonicClock struct {
	last time.Time        // последняя выданная метка
	wall func() time.Time // источник физического времени
	mu   sync.Mutex
}

// NewMonotonicClock создает часы на основе time.Now.
func NewMonotonicClock() *MonotonicClock {
	return NewMonotonicClockWithSource(time.Now)
}

// NewMonotonicClockWithSource создает часы с заданным источником времени.
// Используется в тестах.
func NewMonotonicClockWithSource(wall func() time.Time) *MonotonicClock {
	return &MonotonicClock{wall: wall}
}

// Now returns max(wall, last+1ns) in UTC and remembers it.
// Monotonic clock readings are stripped so values round-trip through storage.
func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.wall().UTC().Round(0)
	if !now.After(c.last) {
		now = c.last.Add(time.Nanosecond)
	}
	c.last = now

	return now
}

// Observe поднимает нижнюю границу часов до t.
// Вызывается при старте с меткой последней сохраненной версии, чтобы после
// перезапуска с отстающими системными часами история не нарушалась.
// По аналогии с Update у часов Лампорта: last = max(last, t).
func (c *MonotonicClock) Observe(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t = t.UTC().Round(0)
	if t.After(c.last) {
		c.last = t
	}
}

// Last возвращает последнюю выданную или наблюденную метку.
func (c *MonotonicClock) Last() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}
