package logform

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/theme"
	"github.com/nhle/wellup/internal/ui"
)

// LogSubmittedMsg carries the study hours entered by the user.
type LogSubmittedMsg struct {
	Date    clock.Date
	Hours   float64
	Subject string
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	date    string
	hours   string
	subject string
}

// Model is the study hours entry form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new study log form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start resets the fields, pre-filling the date with today.
func (m *Model) Start(today clock.Date) tea.Cmd {
	m.fb.date = today.String()
	m.fb.hours = ""
	m.fb.subject = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("Log Study Hours") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.fb.date).
				Validate(ui.ValidateDate),
			huh.NewInput().
				Title("Hours").
				Placeholder("e.g. 1.5").
				Value(&m.fb.hours).
				Validate(ui.ValidateHours),
			huh.NewInput().
				Title("Subject").
				Placeholder("General Study").
				Value(&m.fb.subject),
		),
	).WithWidth(ui.FormWidth(m.width)).WithHeight(ui.FormHeight(m.height))
}

func (m Model) handleSubmit() tea.Cmd {
	date, err := clock.ParseDate(strings.TrimSpace(m.fb.date))
	if err != nil {
		return func() tea.Msg { return CancelMsg{} }
	}
	hours, err := ui.ParseHours(m.fb.hours)
	if err != nil {
		return func() tea.Msg { return CancelMsg{} }
	}
	msg := LogSubmittedMsg{Date: date, Hours: hours, Subject: strings.TrimSpace(m.fb.subject)}
	return func() tea.Msg { return msg }
}
