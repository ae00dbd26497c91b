package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/nhle/wellup/internal/clock"
)

// TimerMode is one of the focus timer's preset countdowns.
type TimerMode string

const (
	ModeWork       TimerMode = "work"
	ModeShortBreak TimerMode = "shortBreak"
	ModeLongBreak  TimerMode = "longBreak"
)

// IsValid reports whether m is a known mode.
func (m TimerMode) IsValid() bool {
	switch m {
	case ModeWork, ModeShortBreak, ModeLongBreak:
		return true
	default:
		return false
	}
}

// Label returns the display name of m.
func (m TimerMode) Label() string {
	switch m {
	case ModeWork:
		return "Work Session"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return string(m)
	}
}

// ParseTimerMode accepts the canonical names plus the short forms
// "short" and "long".
func ParseTimerMode(input string) (TimerMode, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "work", "focus":
		return ModeWork, nil
	case "short", "shortbreak", "short_break":
		return ModeShortBreak, nil
	case "long", "longbreak", "long_break":
		return ModeLongBreak, nil
	default:
		return "", &ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown timer mode %q", input)}
	}
}

// TimerState is a read-only view of the focus timer.
type TimerState struct {
	Mode      TimerMode
	Remaining time.Duration
	Running   bool
}

// FocusStats counts completed work sessions for the current day.
type FocusStats struct {
	SessionsToday     int         `json:"sessionsToday"`
	TotalMinutesToday int         `json:"totalMinutesToday"`
	LastSessionDate   *clock.Date `json:"lastSessionDate"`
}
