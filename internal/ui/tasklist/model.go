package tasklist

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/wellup/internal/keys"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/theme"
)

// ToggleTaskMsg is sent when the user completes or reopens the selected task.
type ToggleTaskMsg struct {
	TaskID string
}

// OpenTaskMsg is sent when the user asks for the selected task's details.
type OpenTaskMsg struct {
	TaskID string
}

// DeleteTaskMsg is sent when the user deletes the selected task.
type DeleteTaskMsg struct {
	TaskID string
}

// FilterChangedMsg is sent when the user cycles the task filter.
type FilterChangedMsg struct {
	Filter model.TaskFilter
}

// filterCycle is the order the filter key walks through.
var filterCycle = []model.TaskFilter{
	model.FilterAll,
	model.FilterActive,
	model.FilterCompleted,
	model.FilterHighPriorityActive,
}

// Model is the task list view component.
type Model struct {
	list   list.Model
	keys   *keys.KeyMap
	filter model.TaskFilter
	width  int
	height int
}

// New creates a new task list model.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height)
	l.Title = "Tasks"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:   l,
		keys:   k,
		filter: model.FilterAll,
		width:  width,
		height: height,
	}
}

// SetTasks replaces the listed tasks. now drives the deadline labels.
func (m *Model) SetTasks(tasks []model.Task, now time.Time) tea.Cmd {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = TaskItem{Task: t}
	}
	m.list.SetDelegate(ItemDelegate{now: now})
	return m.list.SetItems(items)
}

// SetFilter records the active filter for the title and cycle order.
func (m *Model) SetFilter(f model.TaskFilter) {
	m.filter = f
	m.list.Title = fmt.Sprintf("Tasks · %s", filterLabel(f))
}

// Filter returns the active filter.
func (m Model) Filter() model.TaskFilter {
	return m.filter
}

// SelectedTask returns the highlighted task, if any.
func (m Model) SelectedTask() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.Task, true
}

// Update handles messages for the task list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Open):
			t, ok := m.SelectedTask()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return OpenTaskMsg{TaskID: t.ID} }

		case key.Matches(msg, m.keys.Toggle):
			t, ok := m.SelectedTask()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return ToggleTaskMsg{TaskID: t.ID} }

		case key.Matches(msg, m.keys.Delete):
			t, ok := m.SelectedTask()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return DeleteTaskMsg{TaskID: t.ID} }

		case key.Matches(msg, m.keys.Filter):
			next := nextFilter(m.filter)
			m.SetFilter(next)
			return m, func() tea.Msg { return FilterChangedMsg{Filter: next} }
		}
	}

	// Delegate to the list for navigation keys (up/down/pgup/pgdn)
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the task list view.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}
	return m.list.View()
}

// renderEmptyState shows guidance text when no tasks are listed.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if m.filter != model.FilterAll {
		return style.Render(fmt.Sprintf("No %s tasks.\nPress f to change the filter.", filterLabel(m.filter)))
	}
	return style.Render("No tasks yet! Add one to get started.\n\nPress n to create a task.")
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}

func nextFilter(f model.TaskFilter) model.TaskFilter {
	for i, c := range filterCycle {
		if c == f {
			return filterCycle[(i+1)%len(filterCycle)]
		}
	}
	return model.FilterAll
}

func filterLabel(f model.TaskFilter) string {
	switch f {
	case model.FilterActive:
		return "active"
	case model.FilterCompleted:
		return "completed"
	case model.FilterHighPriorityActive:
		return "high priority"
	default:
		return "all"
	}
}
