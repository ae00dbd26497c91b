package reward

import "github.com/nhle/wellup/internal/model"

// LevelUp is emitted once per level gained.
type LevelUp struct {
	Level    int
	XPNeeded int
}

// Ledger owns level, XP and the completed-task counter.
//
// Level and XPNeeded only grow: revoking XP never undoes a level-up.
type Ledger struct {
	state model.RewardState
}

// NewLedger returns a ledger starting from s. Out-of-range values from a
// damaged snapshot are repaired and any pending level-ups are settled.
func NewLedger(s model.RewardState) *Ledger {
	if s.Level < 1 {
		s.Level = model.DefaultLevel
	}
	if s.XPNeeded <= 0 {
		s.XPNeeded = model.DefaultXPNeeded
	}
	if s.XP < 0 {
		s.XP = 0
	}
	if s.TasksCompleted < 0 {
		s.TasksCompleted = 0
	}
	l := &Ledger{state: s}
	l.SettleLevels()
	return l
}

// State returns a copy of the ledger state.
func (l *Ledger) State() model.RewardState {
	return l.state
}

// ApplyXP adds delta, which may be negative, clamping the total at zero.
// It does not settle levels.
func (l *Ledger) ApplyXP(delta int) {
	l.state.XP += delta
	if l.state.XP < 0 {
		l.state.XP = 0
	}
}

// SettleLevels converts XP into levels until XP is below the threshold.
// Each level raises the threshold by LevelGrowth, rounded down.
func (l *Ledger) SettleLevels() []LevelUp {
	var ups []LevelUp
	for l.state.XP >= l.state.XPNeeded {
		l.state.XP -= l.state.XPNeeded
		l.state.Level++
		l.state.XPNeeded = int(float64(l.state.XPNeeded) * LevelGrowth)
		ups = append(ups, LevelUp{Level: l.state.Level, XPNeeded: l.state.XPNeeded})
	}
	return ups
}

// Award adds xp and settles levels.
func (l *Ledger) Award(xp int) []LevelUp {
	l.ApplyXP(xp)
	return l.SettleLevels()
}

// Revoke removes xp without touching level or threshold.
func (l *Ledger) Revoke(xp int) {
	l.ApplyXP(-xp)
}

// RecordCompletion increments the completed-task counter.
func (l *Ledger) RecordCompletion() {
	l.state.TasksCompleted++
}

// RecordReopen decrements the completed-task counter, never below zero.
func (l *Ledger) RecordReopen() {
	if l.state.TasksCompleted > 0 {
		l.state.TasksCompleted--
	}
}

// Progress returns XP / XPNeeded in [0, 1).
func (l *Ledger) Progress() float64 {
	return float64(l.state.XP) / float64(l.state.XPNeeded)
}
