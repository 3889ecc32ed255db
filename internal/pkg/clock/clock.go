package clock

import (
	"sync"
	"time"
)

// Clock is the time source for stored timestamps and for the "today" used by
// availability checks.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewRealClock reports wall time in the server's local zone, which is also the
// zone availability dates are computed in.
func NewRealClock() Clock {
	return systemClock{loc: time.Local}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// MockClock is a settable clock for tests. It is safe for concurrent use so it
// can sit behind an HTTP handler.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.currentTime = t
	c.mu.Unlock()
}

// AdvanceDays moves the clock by whole calendar days, keeping the time of day.
func (c *MockClock) AdvanceDays(n int) {
	c.mu.Lock()
	c.currentTime = c.currentTime.AddDate(0, 0, n)
	c.mu.Unlock()
}
