package studyview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/wellup/internal/keys"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/studylog"
	"github.com/nhle/wellup/internal/theme"
	"github.com/nhle/wellup/internal/ui"
)

// DeleteLogMsg is sent when the user deletes the selected entry.
type DeleteLogMsg struct {
	EntryID string
}

// FilterChangedMsg is sent when the user cycles the entry filter.
type FilterChangedMsg struct {
	Filter model.LogFilter
}

// Data is the aggregate state shown above the entry list.
type Data struct {
	Week      [7]studylog.DayTotal
	WeekLabel string
	Summary   studylog.Summary
	Insights  studylog.Insights
}

// chartHeight is the number of rows in the weekly bar chart.
const chartHeight = 6

var filterCycle = []model.LogFilter{model.LogFilterAll, model.LogFilterWeek, model.LogFilterMonth}

// entryItem wraps a study log entry for bubbles/list.
type entryItem struct {
	entry model.StudyLogEntry
}

func (i entryItem) FilterValue() string { return i.entry.Subject }

type entryDelegate struct{}

func (entryDelegate) Height() int                             { return 1 }
func (entryDelegate) Spacing() int                            { return 0 }
func (entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}
	e := it.entry
	line := fmt.Sprintf("%s  %s  %s",
		e.Date.String(),
		theme.XPStyle.Render(fmt.Sprintf("%5.1fh", e.Hours)),
		e.Subject,
	)
	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}
	fmt.Fprint(w, line)
}

// Model is the study analytics screen.
type Model struct {
	list   list.Model
	keys   *keys.KeyMap
	filter model.LogFilter
	width  int
	height int
}

// New creates a new study view model.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, entryDelegate{}, width, height)
	l.Title = "Study Log"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	m := Model{list: l, keys: k, filter: model.LogFilterAll}
	m.SetSize(width, height)
	return m
}

// SetEntries replaces the listed entries.
func (m *Model) SetEntries(entries []model.StudyLogEntry) tea.Cmd {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}
	return m.list.SetItems(items)
}

// SetFilter records the active filter.
func (m *Model) SetFilter(f model.LogFilter) {
	m.filter = f
	m.list.Title = fmt.Sprintf("Study Log · %s", f)
}

// Filter returns the active filter.
func (m Model) Filter() model.LogFilter {
	return m.filter
}

// Update handles list navigation and entry actions.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Delete):
			it, ok := m.list.SelectedItem().(entryItem)
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return DeleteLogMsg{EntryID: it.entry.ID} }

		case key.Matches(msg, m.keys.Filter):
			next := model.LogFilterAll
			for i, f := range filterCycle {
				if f == m.filter {
					next = filterCycle[(i+1)%len(filterCycle)]
				}
			}
			m.SetFilter(next)
			return m, func() tea.Msg { return FilterChangedMsg{Filter: next} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// SetSize updates the view dimensions. The chart and summary take the top
// of the screen and the entry list gets the rest.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	listHeight := height - chartHeight - 8
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(width/2, listHeight)
}

// Render draws the whole screen for d.
func (m Model) Render(d Data) string {
	chart := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(d.WeekLabel),
		RenderWeekChart(d.Week),
	)

	summary := RenderSummary(d.Summary)
	insights := RenderInsights(d.Insights, m.width/2-4)

	var entries string
	if len(m.list.Items()) == 0 {
		entries = theme.HelpStyle.Render("No study sessions logged yet. Press n to log hours.")
	} else {
		entries = m.list.View()
	}

	left := lipgloss.JoinVertical(lipgloss.Left, chart, "", entries)
	right := lipgloss.JoinVertical(lipgloss.Left, summary, "", insights)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(m.width/2).Render(left),
		right,
	)
}

// RenderWeekChart draws one vertical bar per weekday, scaled to the week's
// busiest day.
func RenderWeekChart(week [7]studylog.DayTotal) string {
	peak := 0.0
	for _, d := range week {
		if d.Hours > peak {
			peak = d.Hours
		}
	}

	bar := lipgloss.NewStyle().Foreground(theme.ColorBlue)
	rows := make([]string, 0, chartHeight+2)
	for row := chartHeight; row >= 1; row-- {
		var b strings.Builder
		for _, d := range week {
			filled := 0
			if peak > 0 {
				filled = int(d.Hours/peak*chartHeight + 0.5)
			}
			if filled >= row {
				b.WriteString(bar.Render(" ██ "))
			} else {
				b.WriteString("    ")
			}
		}
		rows = append(rows, b.String())
	}

	var labels, values strings.Builder
	for _, d := range week {
		labels.WriteString(fmt.Sprintf(" %-3s", d.Date.Weekday().String()[:2]))
		values.WriteString(fmt.Sprintf("%4s", formatHours(d.Hours)))
	}
	rows = append(rows, theme.HelpStyle.Render(labels.String()), values.String())
	return strings.Join(rows, "\n")
}

// RenderSummary draws the current-week figures.
func RenderSummary(s studylog.Summary) string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("This Week"),
		fmt.Sprintf("Total hours:   %s", formatHours(s.WeekHours)),
		fmt.Sprintf("Avg per day:   %.1f", s.AvgPerDay),
		fmt.Sprintf("Days logged:   %d/7", s.DaysLogged),
		fmt.Sprintf("Today:         %s", formatHours(s.TodayHours)),
	}
	return theme.BorderStyle.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// RenderInsights draws the derived trends and the weekly goal bar.
func RenderInsights(in studylog.Insights, width int) string {
	best := "n/a"
	if in.BestWeekdayHours > 0 {
		best = fmt.Sprintf("%s (%sh)", in.BestWeekday, formatHours(in.BestWeekdayHours))
	}

	goal := fmt.Sprintf("%.0f%% of %sh goal", in.GoalPercent(), formatHours(in.GoalHours))
	if in.GoalReached {
		goal = theme.SuccessStyle.Render("🎯 Weekly goal reached!")
	}

	barWidth := width - 4
	if barWidth > 30 {
		barWidth = 30
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Insights"),
		fmt.Sprintf("Most productive: %s", best),
		theme.StreakStyle.Render(fmt.Sprintf("🔥 %d day streak", in.Streak)),
		goal,
		ui.ProgressBar(in.GoalPercent()/100, barWidth, theme.ColorGreen),
	}
	return theme.BorderStyle.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// formatHours prints whole hours without a decimal point.
func formatHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%d", int(h))
	}
	return fmt.Sprintf("%.1f", h)
}
