package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/nhle/wellup/internal/clock"
)

// Priority is the user-assigned importance of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Multiplier returns the XP multiplier for p: low 1, medium 2, high 3.
func (p Priority) Multiplier() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}

// ParsePriority parses a priority name, case-insensitively.
func ParsePriority(input string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(input)))
	if !p.IsValid() {
		return "", &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", input)}
	}
	return p, nil
}

// Task is a user-created to-do item.
type Task struct {
	// ID is an opaque unique token.
	ID string `json:"id"`

	// Title is the non-empty, user-entered text. It is never HTML-safe.
	Title string `json:"title"`

	// Deadline is the optional due day.
	Deadline *clock.Date `json:"deadline,omitempty"`

	Priority  Priority  `json:"priority"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`

	// XPValue is fixed when the task is created and never recomputed.
	XPValue int `json:"xpValue"`
}

// TaskFilter selects a view over the task list.
type TaskFilter string

const (
	FilterAll       TaskFilter = "all"
	FilterActive    TaskFilter = "active"
	FilterCompleted TaskFilter = "completed"
	// FilterHighPriorityActive selects high-priority tasks that are not completed.
	FilterHighPriorityActive TaskFilter = "high"
)

// ParseTaskFilter parses a filter name. Empty input means FilterAll.
func ParseTaskFilter(input string) (TaskFilter, error) {
	switch f := TaskFilter(strings.ToLower(strings.TrimSpace(input))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterCompleted, FilterHighPriorityActive:
		return f, nil
	default:
		return "", &ValidationError{Field: "filter", Reason: fmt.Sprintf("unknown filter %q", input)}
	}
}

// Matches reports whether t is included by f.
func (f TaskFilter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterHighPriorityActive:
		return t.Priority == PriorityHigh && !t.Completed
	default:
		return true
	}
}
