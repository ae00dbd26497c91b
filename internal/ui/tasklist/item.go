package tasklist

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/theme"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task model.Task
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Title }

// Title returns the task title for the list.
func (i TaskItem) Title() string { return i.Task.Title }

// Description returns a short summary line for the list.
func (i TaskItem) Description() string {
	return fmt.Sprintf("%s | %d XP", i.Task.Priority, i.Task.XPValue)
}

// ItemDelegate implements list.ItemDelegate for rendering tasks.
type ItemDelegate struct {
	// now is the reference time for deadline labels.
	now time.Time
}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused for now).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single task line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TaskItem)
	if !ok {
		return
	}
	fmt.Fprint(w, d.renderTask(ti.Task, index == m.Index()))
}

func (d ItemDelegate) renderTask(t model.Task, isSelected bool) string {
	hasDeadline := t.Deadline != nil && !t.Deadline.IsZero()

	prefix := "○"
	switch {
	case t.Completed:
		prefix = "✓"
	case hasDeadline && clock.Urgent(d.now, *t.Deadline):
		prefix = theme.ErrorStyle.UnsetPadding().Render("!")
	}

	priBadge := theme.PriorityStyle(t.Priority).Render(priorityLabel(t.Priority))
	xp := theme.XPStyle.Render(fmt.Sprintf("+%d XP", t.XPValue))

	title := t.Title
	if t.Completed {
		title = theme.CompletedItemStyle.Render(title)
	}

	deadline := ""
	if hasDeadline {
		deadline = " " + DeadlineLabel(d.now, *t.Deadline, t.Completed)
	}

	line := fmt.Sprintf("%s %s %s%s  %s", prefix, priBadge, title, deadline, xp)

	if isSelected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

// DeadlineLabel renders a deadline relative to now, colored by proximity.
// Completed tasks are never shown as overdue.
func DeadlineLabel(now time.Time, d clock.Date, completed bool) string {
	p := clock.Classify(now, d)
	if completed {
		p = clock.Later
	}

	var text string
	switch p {
	case clock.Overdue:
		text = fmt.Sprintf("overdue %s", d.In(time.UTC).Format("Jan 02"))
	case clock.DueToday:
		text = "due today"
	case clock.DueTomorrow:
		text = "due tomorrow"
	case clock.DueThisWeek:
		text = fmt.Sprintf("due in %dd", clock.DaysUntil(now, d))
	default:
		text = "due " + d.In(time.UTC).Format("Jan 02")
	}
	return theme.ProximityStyle(p).Render(text)
}

// priorityLabel returns a short label for the given priority.
func priorityLabel(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "HIGH"
	case model.PriorityMedium:
		return "MED "
	case model.PriorityLow:
		return "LOW "
	default:
		return "?   "
	}
}
