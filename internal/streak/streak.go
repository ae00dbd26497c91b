// Package streak tracks consecutive calendar days with a completed task.
package streak

import (
	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

// Tracker advances, holds or resets the daily streak.
//
// Reopening a task never shortens the streak.
type Tracker struct {
	state model.StreakState
}

// NewTracker returns a tracker starting from s.
func NewTracker(s model.StreakState) *Tracker {
	if s.Streak < 0 {
		s.Streak = 0
	}
	if s.LastCompletionDate != nil && s.LastCompletionDate.IsZero() {
		s.LastCompletionDate = nil
	}
	return &Tracker{state: s}
}

// State returns a copy of the tracker state.
func (t *Tracker) State() model.StreakState {
	s := t.state
	if s.LastCompletionDate != nil {
		d := *s.LastCompletionDate
		s.LastCompletionDate = &d
	}
	return s
}

// Streak returns the current streak length.
func (t *Tracker) Streak() int {
	return t.state.Streak
}

// RecordCompletion registers a completion on today. A second completion on
// the same day changes nothing and returns false.
func (t *Tracker) RecordCompletion(today clock.Date) bool {
	last := t.state.LastCompletionDate
	switch {
	case last == nil:
		t.state.Streak = 1
	case *last == today:
		return false
	case *last == today.AddDays(-1):
		t.state.Streak++
	default:
		t.state.Streak = 1
	}
	t.state.LastCompletionDate = &today
	return true
}

// ReconcileOnLoad zeroes the streak when the last completion is older than
// yesterday. The last completion date is kept. It reports whether the
// streak changed.
func (t *Tracker) ReconcileOnLoad(today clock.Date) bool {
	last := t.state.LastCompletionDate
	if last == nil {
		return false
	}
	if *last == today || *last == today.AddDays(-1) {
		return false
	}
	if t.state.Streak == 0 {
		return false
	}
	t.state.Streak = 0
	return true
}
