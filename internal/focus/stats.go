package focus

import (
	"fmt"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

// Stats counts completed work sessions for the current day.
type Stats struct {
	state model.FocusStats
}

// NewStats returns stats starting from s.
func NewStats(s model.FocusStats) *Stats {
	if s.SessionsToday < 0 {
		s.SessionsToday = 0
	}
	if s.TotalMinutesToday < 0 {
		s.TotalMinutesToday = 0
	}
	return &Stats{state: s}
}

// State returns a copy of the stats.
func (s *Stats) State() model.FocusStats {
	st := s.state
	if st.LastSessionDate != nil {
		d := *st.LastSessionDate
		st.LastSessionDate = &d
	}
	return st
}

// ReconcileDay clears the counters when the last session was on another day.
// It reports whether anything changed.
func (s *Stats) ReconcileDay(today clock.Date) bool {
	last := s.state.LastSessionDate
	if last == nil || *last == today {
		return false
	}
	if s.state.SessionsToday == 0 && s.state.TotalMinutesToday == 0 {
		return false
	}
	s.state.SessionsToday = 0
	s.state.TotalMinutesToday = 0
	return true
}

// RecordSession adds a finished work session of the given length.
func (s *Stats) RecordSession(today clock.Date, minutes int) {
	s.ReconcileDay(today)
	s.state.SessionsToday++
	s.state.TotalMinutesToday += minutes
	s.state.LastSessionDate = &today
}

// TotalTime formats today's focused minutes as "Hh Mm".
func (s *Stats) TotalTime() string {
	return FormatMinutes(s.state.TotalMinutesToday)
}

// FormatMinutes formats a minute count as "Hh Mm".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}
