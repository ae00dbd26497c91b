// Package clock maps timestamps onto local calendar days and weeks.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current time so day boundaries can be controlled in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// System implements Clock using the wall clock.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Manual is a Clock whose time only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a Manual clock set to t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

// Now returns the clock's current time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Today returns the local calendar day of c.Now().
func Today(c Clock) Date {
	return DateOf(c.Now())
}
