package scheduleview

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/keys"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/theme"
	"github.com/nhle/wellup/internal/ui/tasklist"
)

// DeleteDateMsg is sent when the user removes the selected important date.
type DeleteDateMsg struct {
	DateID string
}

// Data is the side panel content.
type Data struct {
	Upcoming  []model.ImportantDate
	Deadlines []model.Task
}

type dateItem struct {
	date model.ImportantDate
}

func (i dateItem) FilterValue() string { return i.date.Title }

type dateDelegate struct {
	now time.Time
}

func (dateDelegate) Height() int                             { return 1 }
func (dateDelegate) Spacing() int                            { return 0 }
func (dateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d dateDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(dateItem)
	if !ok {
		return
	}
	line := fmt.Sprintf("📅 %s  %s  %s",
		it.date.Date.String(),
		it.date.Title,
		theme.HelpStyle.Render(relativeDays(d.now, it.date.Date)),
	)
	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}
	fmt.Fprint(w, line)
}

// Model is the scheduling screen.
type Model struct {
	list   list.Model
	keys   *keys.KeyMap
	now    time.Time
	width  int
	height int
}

// New creates a new schedule view model.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, dateDelegate{}, width, height)
	l.Title = "Important Dates"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	m := Model{list: l, keys: k}
	m.SetSize(width, height)
	return m
}

// SetDates replaces the listed dates. now drives the relative labels.
func (m *Model) SetDates(dates []model.ImportantDate, now time.Time) tea.Cmd {
	m.now = now
	items := make([]list.Item, len(dates))
	for i, d := range dates {
		items[i] = dateItem{date: d}
	}
	m.list.SetDelegate(dateDelegate{now: now})
	return m.list.SetItems(items)
}

// Update handles list navigation and the delete action.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Delete) {
		it, ok := m.list.SelectedItem().(dateItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return DeleteDateMsg{DateID: it.date.ID} }
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width/2, height)
}

// Render draws the date list next to the upcoming and deadline panels.
func (m Model) Render(d Data) string {
	var left string
	if len(m.list.Items()) == 0 {
		left = theme.HelpStyle.Render("No important dates yet. Press n to add one.")
	} else {
		left = m.list.View()
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		renderUpcoming(m.now, d.Upcoming),
		"",
		renderDeadlines(m.now, d.Deadlines),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(m.width/2).Render(left),
		right,
	)
}

func renderUpcoming(now time.Time, dates []model.ImportantDate) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render("Next 7 Days")}
	if len(dates) == 0 {
		lines = append(lines, theme.HelpStyle.Render("Nothing coming up."))
	}
	for _, d := range dates {
		lines = append(lines, fmt.Sprintf("%s  %s",
			theme.ProximityStyle(clock.Classify(now, d.Date)).Render(relativeDays(now, d.Date)),
			d.Title,
		))
	}
	return theme.BorderStyle.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func renderDeadlines(now time.Time, tasks []model.Task) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render("Task Deadlines")}
	if len(tasks) == 0 {
		lines = append(lines, theme.HelpStyle.Render("No open tasks with deadlines."))
	}
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("%s  %s",
			tasklist.DeadlineLabel(now, *t.Deadline, t.Completed),
			t.Title,
		))
	}
	return theme.BorderStyle.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func relativeDays(now time.Time, d clock.Date) string {
	switch n := clock.DaysUntil(now, d); {
	case n < 0:
		return fmt.Sprintf("%d days ago", -n)
	case n == 0:
		return "today"
	case n == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", n)
	}
}
