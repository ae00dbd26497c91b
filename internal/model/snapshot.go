package model

import "github.com/nhle/wellup/internal/clock"

// Default reward values for a fresh profile.
const (
	DefaultLevel    = 1
	DefaultXPNeeded = 100
)

// RewardState is the persisted part of the reward ledger.
type RewardState struct {
	Level          int `json:"level"`
	XP             int `json:"xp"`
	XPNeeded       int `json:"xpNeeded"`
	TasksCompleted int `json:"tasksCompleted"`
}

// DefaultRewardState returns the state of a profile that never earned XP.
func DefaultRewardState() RewardState {
	return RewardState{Level: DefaultLevel, XPNeeded: DefaultXPNeeded}
}

// StreakState is the persisted part of the streak tracker.
type StreakState struct {
	Streak             int         `json:"streak"`
	LastCompletionDate *clock.Date `json:"lastCompletionDate"`
}

// DataSnapshot is the value stored under the shared task data key. The task
// and scheduling screens both read and write the whole snapshot.
type DataSnapshot struct {
	Tasks          []Task          `json:"tasks"`
	ImportantDates []ImportantDate `json:"importantDates"`
	RewardState
	StreakState
}

// DefaultDataSnapshot returns the state used when nothing was saved yet.
func DefaultDataSnapshot() DataSnapshot {
	return DataSnapshot{
		Tasks:          []Task{},
		ImportantDates: []ImportantDate{},
		RewardState:    DefaultRewardState(),
	}
}

// AnalyticsSnapshot is the value stored under the study log key.
type AnalyticsSnapshot struct {
	StudyLogs []StudyLogEntry `json:"studyLogs"`
}

// FocusSnapshot is the value stored under the focus stats key.
type FocusSnapshot struct {
	Stats FocusStats `json:"stats"`
}

// Theme is the shared light/dark preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
