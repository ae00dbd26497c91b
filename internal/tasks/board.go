// Package tasks holds the task list and the important-dates calendar.
package tasks

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/reward"
	"github.com/nhle/wellup/internal/streak"
)

// ToggleResult describes the side effects of toggling a task.
type ToggleResult struct {
	Task model.Task

	// XPDelta is positive when XP was awarded and negative when revoked.
	XPDelta  int
	LevelUps []reward.LevelUp

	// StreakAdvanced is true when the completion moved the streak to today.
	StreakAdvanced bool
}

// Board owns the task list and drives the reward ledger and the streak
// tracker on completion changes.
type Board struct {
	tasks  []model.Task
	ledger *reward.Ledger
	streak *streak.Tracker
	clock  clock.Clock
}

// NewBoard returns a board over tasks. The slice is copied.
func NewBoard(tasks []model.Task, ledger *reward.Ledger, tracker *streak.Tracker, c clock.Clock) *Board {
	own := make([]model.Task, len(tasks))
	for i, t := range tasks {
		own[i] = cloneTask(t)
	}
	return &Board{tasks: own, ledger: ledger, streak: tracker, clock: c}
}

// Add creates a task and inserts it at the front of the list. Its XP value is
// computed from priority and deadline at this moment and never changes.
func (b *Board) Add(title string, deadline *clock.Date, priority model.Priority) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, &model.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !priority.IsValid() {
		return model.Task{}, &model.ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", priority)}
	}
	if deadline != nil && deadline.IsZero() {
		deadline = nil
	}
	if deadline != nil {
		d := *deadline
		deadline = &d
	}

	now := b.clock.Now()
	t := model.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Deadline:  deadline,
		Priority:  priority,
		CreatedAt: now,
		XPValue:   reward.ComputeXP(priority, deadline, now),
	}
	b.tasks = append([]model.Task{t}, b.tasks...)
	return cloneTask(t), nil
}

// Toggle flips the completion state of the task with the given id. It
// returns false if no such task exists.
func (b *Board) Toggle(id string) (ToggleResult, bool) {
	i := b.index(id)
	if i < 0 {
		return ToggleResult{}, false
	}
	t := &b.tasks[i]
	t.Completed = !t.Completed

	res := ToggleResult{}
	if t.Completed {
		res.XPDelta = t.XPValue
		res.LevelUps = b.ledger.Award(t.XPValue)
		b.ledger.RecordCompletion()
		res.StreakAdvanced = b.streak.RecordCompletion(clock.Today(b.clock))
	} else {
		res.XPDelta = -t.XPValue
		b.ledger.Revoke(t.XPValue)
		b.ledger.RecordReopen()
	}
	res.Task = cloneTask(*t)
	return res, true
}

// Delete removes the task with the given id. Deleting a completed task
// reverses its XP and completion count the way reopening does. It returns
// false if no such task exists.
func (b *Board) Delete(id string) (model.Task, bool) {
	i := b.index(id)
	if i < 0 {
		return model.Task{}, false
	}
	t := b.tasks[i]
	if t.Completed {
		b.ledger.Revoke(t.XPValue)
		b.ledger.RecordReopen()
	}
	b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
	return t, true
}

// Filter returns the tasks matched by f, in stored order.
func (b *Board) Filter(f model.TaskFilter) []model.Task {
	out := make([]model.Task, 0, len(b.tasks))
	for _, t := range b.tasks {
		if f.Matches(t) {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// Tasks returns a copy of every task.
func (b *Board) Tasks() []model.Task {
	return b.Filter(model.FilterAll)
}

// Get returns the task with the given id.
func (b *Board) Get(id string) (model.Task, bool) {
	i := b.index(id)
	if i < 0 {
		return model.Task{}, false
	}
	return cloneTask(b.tasks[i]), true
}

// cloneTask copies t so the caller cannot reach the board's deadline. A zero
// deadline, as stored by older data for "no deadline", becomes nil.
func cloneTask(t model.Task) model.Task {
	if t.Deadline == nil || t.Deadline.IsZero() {
		t.Deadline = nil
		return t
	}
	d := *t.Deadline
	t.Deadline = &d
	return t
}

// Counts returns the number of tasks and how many are completed.
func (b *Board) Counts() (total, completed int) {
	for _, t := range b.tasks {
		if t.Completed {
			completed++
		}
	}
	return len(b.tasks), completed
}

func (b *Board) index(id string) int {
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
