package clock

import (
	"sort"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	// AfterFunc runs f in its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	// Stop reports false if the timer already fired or was stopped.
	Stop() bool
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// MockClock only fires timers when the test advances it; callbacks run
// synchronously on the goroutine calling Add or Set.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.currentTime = t
	due := c.collectDueLocked()
	c.mu.Unlock()

	for _, mt := range due {
		mt.f()
	}
}

func (c *MockClock) Add(d time.Duration) {
	c.Set(c.Now().Add(d))
}

func (c *MockClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	mt := &mockTimer{clock: c, at: c.currentTime.Add(d), f: f}
	c.timers = append(c.timers, mt)
	return mt
}

// Pending returns the fire times of timers that have neither fired nor been stopped.
func (c *MockClock) Pending() []time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]time.Time, 0, len(c.timers))
	for _, mt := range c.timers {
		out = append(out, mt.at)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (c *MockClock) collectDueLocked() []*mockTimer {
	var due, rest []*mockTimer
	for _, mt := range c.timers {
		if !mt.at.After(c.currentTime) {
			due = append(due, mt)
		} else {
			rest = append(rest, mt)
		}
	}
	c.timers = rest
	sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	return due
}

type mockTimer struct {
	clock *MockClock
	at    time.Time
	f     func()
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	for i, mt := range t.clock.timers {
		if mt == t {
			t.clock.timers = append(t.clock.timers[:i], t.clock.timers[i+1:]...)
			return true
		}
	}
	return false
}
