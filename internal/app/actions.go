package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

// actionResultMsg is sent after a controller mutation finished. A non-nil
// err was rejected input and is shown in the status bar.
type actionResultMsg struct{ err error }

// addTask creates a task on the home screen.
func (m *Model) addTask(title string, deadline *clock.Date, p model.Priority) tea.Cmd {
	s := m.screens.Tasks
	return func() tea.Msg {
		_, err := s.AddTask(context.Background(), title, deadline, p)
		return actionResultMsg{err: err}
	}
}

// toggleTask completes or reopens a task.
func (m *Model) toggleTask(id string) tea.Cmd {
	s := m.screens.Tasks
	return func() tea.Msg {
		s.ToggleTask(context.Background(), id)
		return actionResultMsg{}
	}
}

// deleteTask removes a task.
func (m *Model) deleteTask(id string) tea.Cmd {
	s := m.screens.Tasks
	return func() tea.Msg {
		s.DeleteTask(context.Background(), id)
		return actionResultMsg{}
	}
}

// logHours records study hours.
func (m *Model) logHours(date clock.Date, hours float64, subject string) tea.Cmd {
	s := m.screens.Analytics
	return func() tea.Msg {
		_, err := s.LogHours(context.Background(), date, hours, subject)
		return actionResultMsg{err: err}
	}
}

// deleteLog removes a study log entry.
func (m *Model) deleteLog(id string) tea.Cmd {
	s := m.screens.Analytics
	return func() tea.Msg {
		s.DeleteLog(context.Background(), id)
		return actionResultMsg{}
	}
}

// addDate records an important date.
func (m *Model) addDate(title string, date clock.Date) tea.Cmd {
	s := m.screens.Schedule
	return func() tea.Msg {
		_, err := s.AddDate(context.Background(), title, date)
		return actionResultMsg{err: err}
	}
}

// deleteDate removes an important date.
func (m *Model) deleteDate(id string) tea.Cmd {
	s := m.screens.Schedule
	return func() tea.Msg {
		s.DeleteDate(context.Background(), id)
		return actionResultMsg{}
	}
}
