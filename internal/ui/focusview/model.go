package focusview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/wellup/internal/focus"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/theme"
)

// Data is everything the focus view shows.
type Data struct {
	Timer     model.TimerState
	Remaining focus.Countdown
	Progress  float64
	Stats     model.FocusStats
	TotalTime string
}

// Model renders the focus timer screen.
type Model struct {
	bar    progress.Model
	width  int
	height int
}

// New creates a new focus view model.
func New(width, height int) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	m := Model{bar: bar}
	m.SetSize(width, height)
	return m
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 10
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	m.bar.Width = w
}

// Render draws the full focus screen for d.
func (m Model) Render(d Data) string {
	mode := theme.ModeStyle(d.Timer.Mode).Render(d.Timer.Mode.Label())

	clockStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ModeStyle(d.Timer.Mode).GetForeground())
	countdown := clockStyle.Render(d.Remaining.String())

	state := "paused"
	if d.Timer.Running {
		state = "running"
	}

	modes := lipgloss.JoinHorizontal(lipgloss.Top, modeTabs(d.Timer.Mode)...)

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statBox("Sessions Today", fmt.Sprintf("%d", d.Stats.SessionsToday)),
		statBox("Focus Time", d.TotalTime),
	)

	content := lipgloss.JoinVertical(lipgloss.Center,
		modes,
		"",
		mode,
		countdown,
		m.bar.ViewAs(d.Progress),
		theme.HelpStyle.Render(state),
		"",
		stats,
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// RenderCompact draws a one-line timer for embedding in other screens.
func RenderCompact(d Data) string {
	icon := "⏸"
	if d.Timer.Running {
		icon = "▶"
	}
	return fmt.Sprintf("%s %s %s",
		icon,
		theme.ModeStyle(d.Timer.Mode).Render(d.Timer.Mode.Label()),
		lipgloss.NewStyle().Bold(true).Render(d.Remaining.String()),
	)
}

// NextMode returns the mode after m in the work, short break, long break cycle.
func NextMode(m model.TimerMode) model.TimerMode {
	switch m {
	case model.ModeWork:
		return model.ModeShortBreak
	case model.ModeShortBreak:
		return model.ModeLongBreak
	default:
		return model.ModeWork
	}
}

func modeTabs(active model.TimerMode) []string {
	all := []model.TimerMode{model.ModeWork, model.ModeShortBreak, model.ModeLongBreak}
	out := make([]string, len(all))
	for i, md := range all {
		if md == active {
			out[i] = theme.ActiveTabStyle.Render(md.Label())
		} else {
			out[i] = theme.TabStyle.Render(md.Label())
		}
	}
	return out
}

func statBox(label, value string) string {
	return theme.BorderStyle.
		Padding(0, 2).
		Margin(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render(value),
			theme.HelpStyle.Render(label),
		))
}
