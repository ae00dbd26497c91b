package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/wellup/internal/keys"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/reward"
	"github.com/nhle/wellup/internal/theme"
	"github.com/nhle/wellup/internal/ui/tasklist"
)

// BackMsg signals the parent to navigate back to the list view.
type BackMsg struct{}

// Model is the task detail view component.
type Model struct {
	task     *model.Task
	now      time.Time
	viewport viewport.Model
	keys     *keys.KeyMap
	width    int
	height   int
}

// New creates a new detail view model.
func New(keys *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     keys,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the detail view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view. Toggle and delete are
// reported with the task list's messages so the parent handles them once.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keys.Toggle):
			if m.task != nil {
				id := m.task.ID
				return m, func() tea.Msg { return tasklist.ToggleTaskMsg{TaskID: id} }
			}

		case key.Matches(msg, m.keys.Delete):
			if m.task != nil {
				id := m.task.ID
				return m, func() tea.Msg { return tasklist.DeleteTaskMsg{TaskID: id} }
			}
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	if m.task == nil {
		emptyStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray)
		return emptyStyle.Render("No task selected")
	}

	return m.viewport.View()
}

// renderContent builds the full detail content string for the viewport.
func (m Model) renderContent() string {
	if m.task == nil {
		return ""
	}
	task := m.task
	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	if task.Completed {
		titleStyle = titleStyle.Strikethrough(true)
	}
	sections = append(sections, titleStyle.Render(task.Title))

	status := theme.InfoStyle.Render("ACTIVE")
	if task.Completed {
		status = theme.SuccessStyle.Render("DONE")
	}
	priBadge := theme.PriorityStyle(task.Priority).Render(strings.ToUpper(string(task.Priority)))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, status, "  ", priBadge), "")

	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", metaStyle.Render(fmt.Sprintf("%-10s", label)), value)
	}

	deadline := metaStyle.Render("none")
	if task.Deadline != nil && !task.Deadline.IsZero() {
		deadline = fmt.Sprintf("%s  %s", task.Deadline, tasklist.DeadlineLabel(m.now, *task.Deadline, task.Completed))
	}
	sections = append(sections, row("Deadline:", deadline))
	if !task.CreatedAt.IsZero() {
		sections = append(sections, row("Created:", task.CreatedAt.Local().Format("2006-01-02 15:04")))
	}

	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", max(min(m.width-4, 60), 0)))
	sections = append(sections, "", separator, "")

	base := reward.TaskBaseXP * task.Priority.Multiplier()
	sections = append(sections,
		lipgloss.NewStyle().Bold(true).Render("Reward"),
		row("Priority:", fmt.Sprintf("%d XP", base)),
		row("Urgency:", fmt.Sprintf("%d XP", task.XPValue-base)),
		row("Total:", theme.XPStyle.Render(fmt.Sprintf("+%d XP", task.XPValue))),
	)
	if task.Completed {
		sections = append(sections, "", metaStyle.Render("Reopening returns the XP; the level stays."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetTask updates the task being displayed and re-renders the content.
func (m *Model) SetTask(t model.Task, now time.Time) {
	m.task = &t
	m.now = now
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Task returns the displayed task.
func (m Model) Task() (model.Task, bool) {
	if m.task == nil {
		return model.Task{}, false
	}
	return *m.task, true
}

// Clear drops the displayed task.
func (m *Model) Clear() {
	m.task = nil
	m.viewport.SetContent("")
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
	m.viewport.SetContent(m.renderContent())
}
