// Package reward implements the XP and level arithmetic.
package reward

import (
	"time"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

const (
	// TaskBaseXP is multiplied by the priority multiplier.
	TaskBaseXP = 10

	// SessionXP is awarded for a completed work session.
	SessionXP = 15

	// LevelGrowth is the factor applied to the level threshold on each level-up.
	LevelGrowth = 1.5
)

// UrgencyBonus returns the extra XP for a deadline the given number of whole
// days away. Past deadlines fall into the nearest bucket.
func UrgencyBonus(daysUntil int) int {
	switch {
	case daysUntil <= 1:
		return 20
	case daysUntil <= 3:
		return 10
	case daysUntil <= 7:
		return 5
	default:
		return 0
	}
}

// ComputeXP returns the XP a task is worth when created at now. The value is
// meant to be frozen on the task.
func ComputeXP(p model.Priority, deadline *clock.Date, now time.Time) int {
	xp := TaskBaseXP * p.Multiplier()
	if deadline != nil && !deadline.IsZero() {
		xp += UrgencyBonus(clock.DaysUntil(now, *deadline))
	}
	return xp
}
