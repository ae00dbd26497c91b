package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/focus"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/screen"
	"github.com/nhle/wellup/internal/theme"
	"github.com/nhle/wellup/internal/ui"
	"github.com/nhle/wellup/internal/ui/command"
	"github.com/nhle/wellup/internal/ui/dateform"
	"github.com/nhle/wellup/internal/ui/detail"
	"github.com/nhle/wellup/internal/ui/focusview"
	helpview "github.com/nhle/wellup/internal/ui/help"
	"github.com/nhle/wellup/internal/ui/logform"
	"github.com/nhle/wellup/internal/ui/scheduleview"
	"github.com/nhle/wellup/internal/ui/studyview"
	"github.com/nhle/wellup/internal/ui/taskform"
	"github.com/nhle/wellup/internal/ui/tasklist"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewTasks ViewState = iota
	ViewFocus
	ViewStudy
	ViewSchedule
	ViewHelp
	ViewCommand
	ViewTaskForm
	ViewLogForm
	ViewDateForm
	ViewDetail
)

// tabs are the screens reachable from the tab row, in order.
var tabs = []ViewState{ViewTasks, ViewFocus, ViewStudy, ViewSchedule}

var tabLabels = []string{"1 Tasks", "2 Focus", "3 Study", "4 Schedule"}

// sidePanelWidth is the width of the reward panel beside the task list.
const sidePanelWidth = 34

// Model is the root Bubble Tea model that manages view routing,
// layout, and access to the screen controllers.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	keys         *KeyMap
	screens      *screen.Set
	clock        clock.Clock
	notices      <-chan screen.Notice

	taskList     tasklist.Model
	detailView   detail.Model
	focusView    focusview.Model
	studyView    studyview.Model
	scheduleView scheduleview.Model
	helpView     helpview.Model
	commandView  command.Model
	taskForm     taskform.Model
	logForm      logform.Model
	dateForm     dateform.Model

	noticeText  string
	noticeStyle lipgloss.Style
	noticeUntil time.Time
	ready       bool
}

// New creates the root model over opened controllers. notices is the
// channel the controllers' notifier delivers to; it may be nil.
func New(s *screen.Set, notices <-chan screen.Notice, c clock.Clock) Model {
	if c == nil {
		c = clock.System{}
	}
	keys := DefaultKeyMap()
	theme.Apply(s.Preferences.Theme())

	m := Model{
		currentView:  ViewTasks,
		keys:         keys,
		screens:      s,
		clock:        c,
		notices:      notices,
		layout:       ui.NewLayout(80, 24),
		taskList:     tasklist.New(keys, 80, 24),
		detailView:   detail.New(keys, 80, 24),
		focusView:    focusview.New(80, 24),
		studyView:    studyview.New(keys, 80, 24),
		scheduleView: scheduleview.New(keys, 80, 24),
		helpView:     helpview.New(keys, paletteHelp(), 80, 24),
		commandView:  command.New(paletteSuggestions(), describeCommand, 80, 24),
		taskForm:     taskform.New(80, 24),
		logForm:      logform.New(80, 24),
		dateForm:     dateform.New(80, 24),
	}
	m.refresh()
	return m
}

// Init subscribes to controller notices and starts the render tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForNotice(m.notices),
		tick(),
	)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		m.resize()
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case tickMsg:
		m.screens.Focus.RefreshDay(context.Background())
		if !m.noticeUntil.IsZero() && !m.clock.Now().Before(m.noticeUntil) {
			m.noticeText = ""
			m.noticeUntil = time.Time{}
		}
		return m, tick()

	case noticeMsg:
		m.showNotice(msg.notice.Text, noticeStyle(msg.notice.Kind))
		m.refresh()
		return m, waitForNotice(m.notices)

	case actionResultMsg:
		if msg.err != nil {
			m.showNotice(msg.err.Error(), theme.ErrorStyle)
		}
		m.refresh()
		return m, nil

	case tasklist.ToggleTaskMsg:
		return m, m.toggleTask(msg.TaskID)

	case tasklist.DeleteTaskMsg:
		return m, m.deleteTask(msg.TaskID)

	case tasklist.OpenTaskMsg:
		t, ok := m.screens.Tasks.Task(msg.TaskID)
		if !ok {
			return m, nil
		}
		m.detailView.SetTask(t, m.clock.Now())
		m.previousView = m.currentView
		m.currentView = ViewDetail
		return m, nil

	case detail.BackMsg:
		m.detailView.Clear()
		m.currentView = m.previousView
		return m, nil

	case tasklist.FilterChangedMsg:
		m.screens.Tasks.SetFilter(msg.Filter)
		m.refresh()
		return m, nil

	case studyview.DeleteLogMsg:
		return m, m.deleteLog(msg.EntryID)

	case studyview.FilterChangedMsg:
		m.screens.Analytics.SetFilter(msg.Filter)
		m.refresh()
		return m, nil

	case scheduleview.DeleteDateMsg:
		return m, m.deleteDate(msg.DateID)

	case taskform.TaskSubmittedMsg:
		m.currentView = m.previousView
		return m, m.addTask(msg.Title, msg.Deadline, msg.Priority)

	case logform.LogSubmittedMsg:
		m.currentView = m.previousView
		return m, m.logHours(msg.Date, msg.Hours, msg.Subject)

	case dateform.DateSubmittedMsg:
		m.currentView = m.previousView
		return m, m.addDate(msg.Title, msg.Date)

	case taskform.CancelMsg, logform.CancelMsg, dateform.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(string(msg))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.screens.Stop()
			return m, tea.Quit
		}
		if handled, next, cmd := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleKey processes keys owned by the root model. It reports false when
// the key should reach the active view instead.
func (m Model) handleKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewTaskForm, ViewLogForm, ViewDateForm:
		if key.Matches(msg, m.keys.Back) {
			m.currentView = m.previousView
			return true, m, nil
		}
		return false, m, nil

	case ViewCommand:
		if key.Matches(msg, m.keys.Back) {
			m.commandView.Reset()
			m.currentView = m.previousView
			return true, m, nil
		}
		return false, m, nil

	case ViewDetail:
		if key.Matches(msg, m.keys.Quit) {
			m.screens.Stop()
			return true, m, tea.Quit
		}
		return false, m, nil

	case ViewHelp:
		if key.Matches(msg, m.keys.Back, m.keys.Help, m.keys.Quit) {
			m.currentView = m.previousView
			return true, m, nil
		}
		return false, m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.screens.Stop()
		return true, m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return true, m, nil

	case key.Matches(msg, m.keys.Command):
		m.previousView = m.currentView
		m.currentView = ViewCommand
		cmd := m.commandView.Focus()
		return true, m, cmd

	case key.Matches(msg, m.keys.NextTab):
		m.switchTo(tabs[(m.tabIndex()+1)%len(tabs)])
		return true, m, nil

	case key.Matches(msg, m.keys.Tasks):
		m.switchTo(ViewTasks)
		return true, m, nil

	case key.Matches(msg, m.keys.Focus):
		m.switchTo(ViewFocus)
		return true, m, nil

	case key.Matches(msg, m.keys.Study):
		m.switchTo(ViewStudy)
		return true, m, nil

	case key.Matches(msg, m.keys.Dates):
		m.switchTo(ViewSchedule)
		return true, m, nil

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return true, m, nil

	case key.Matches(msg, m.keys.New):
		cmd := m.openForm()
		return true, m, cmd

	case key.Matches(msg, m.keys.StartPause):
		if t := m.activeTimer(); t != nil {
			if t.Snapshot().Running {
				t.Pause()
			} else {
				t.Start()
			}
			return true, m, nil
		}

	case key.Matches(msg, m.keys.Reset):
		if t := m.activeTimer(); t != nil {
			t.Reset()
			return true, m, nil
		}

	case key.Matches(msg, m.keys.Mode):
		if t := m.activeTimer(); t != nil {
			_ = t.SetMode(focusview.NextMode(t.Snapshot().Mode))
			return true, m, nil
		}

	case key.Matches(msg, m.keys.PrevWeek):
		if m.currentView == ViewStudy {
			m.screens.Analytics.PrevWeek()
			return true, m, nil
		}

	case key.Matches(msg, m.keys.NextWeek):
		if m.currentView == ViewStudy {
			m.screens.Analytics.NextWeek()
			return true, m, nil
		}
	}

	return false, m, nil
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case ViewDetail:
		m.detailView, cmd = m.detailView.Update(msg)
	case ViewStudy:
		m.studyView, cmd = m.studyView.Update(msg)
	case ViewSchedule:
		m.scheduleView, cmd = m.scheduleView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	case ViewTaskForm:
		m.taskForm, cmd = m.taskForm.Update(msg)
	case ViewLogForm:
		m.logForm, cmd = m.logForm.Update(msg)
	case ViewDateForm:
		m.dateForm, cmd = m.dateForm.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("WellUp", m.progressStatus())
	tabRow := m.layout.RenderTabs(tabLabels, m.tabIndex())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())
	if m.noticeText != "" {
		statusBar = m.layout.RenderStatusBar(m.noticeStyle.Render(m.noticeText))
	}

	return m.layout.RenderWithFrame(header, tabRow, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewTasks:
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.taskList.View(),
			m.renderSidePanel(),
		)
	case ViewFocus:
		return m.focusView.Render(focusData(m.screens.Focus.Timer(), m.screens.Focus.Stats(), m.screens.Focus.TotalTime()))
	case ViewStudy:
		a := m.screens.Analytics
		return m.studyView.Render(studyview.Data{
			Week:      a.Week(),
			WeekLabel: a.WeekLabel(),
			Summary:   a.Summary(),
			Insights:  a.Insights(),
		})
	case ViewSchedule:
		return m.scheduleView.Render(scheduleview.Data{
			Upcoming:  m.screens.Schedule.Upcoming(),
			Deadlines: m.screens.Schedule.Deadlines(),
		})
	case ViewDetail:
		return m.detailView.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewTaskForm:
		return m.taskForm.View()
	case ViewLogForm:
		return m.logForm.View()
	case ViewDateForm:
		return m.dateForm.View()
	default:
		return ""
	}
}

// renderSidePanel draws the level, XP and streak panel of the home screen.
func (m Model) renderSidePanel() string {
	ov := m.screens.Tasks.Overview()
	r := ov.Reward

	lines := []string{
		theme.LevelStyle.Render(fmt.Sprintf("Level %d", r.Level)),
		"",
		theme.XPStyle.Render(fmt.Sprintf("%d / %d XP", r.XP, r.XPNeeded)),
		ui.ProgressBar(ov.Progress, sidePanelWidth-6, theme.ColorMagenta),
		"",
		theme.StreakStyle.Render(fmt.Sprintf("🔥 %d day streak", ov.Streak)),
		fmt.Sprintf("✓ %d/%d tasks done", ov.Completed, ov.Total),
		fmt.Sprintf("🏆 %d completed all-time", r.TasksCompleted),
		"",
		lipgloss.NewStyle().Bold(true).Render("Quick Focus"),
		focusview.RenderCompact(focusData(m.screens.Tasks.Timer(), model.FocusStats{}, "")),
	}

	return theme.BorderStyle.
		Width(sidePanelWidth - 2).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// progressStatus is the header's right-hand summary.
func (m Model) progressStatus() string {
	ov := m.screens.Tasks.Overview()
	return fmt.Sprintf("Lv %d · %d/%d XP · 🔥 %d", ov.Reward.Level, ov.Reward.XP, ov.Reward.XPNeeded, ov.Streak)
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | tab complete | esc back"
	case ViewTaskForm, ViewLogForm, ViewDateForm:
		return "enter submit | esc cancel"
	case ViewDetail:
		return "x complete/reopen | d delete | j/k scroll | esc back"
	case ViewFocus:
		return "s start/pause | r reset | m mode | tab next | ? help | q quit"
	case ViewStudy:
		return "n log hours | d delete | f filter | [ ] week | ? help | q quit"
	case ViewSchedule:
		return "n new date | d delete | tab next | ? help | q quit"
	default:
		return "n new | enter details | x complete | d delete | f filter | s timer | ? help | q quit"
	}
}

// switchTo activates a tab, reloading its controller the way each screen
// reads its snapshot when opened.
func (m *Model) switchTo(v ViewState) {
	ctx := context.Background()
	switch v {
	case ViewTasks:
		m.screens.Tasks.Open(ctx)
	case ViewFocus:
		m.screens.Focus.Open(ctx)
	case ViewStudy:
		m.screens.Analytics.Open(ctx)
	case ViewSchedule:
		m.screens.Schedule.Open(ctx)
	}
	m.currentView = v
	m.refresh()
}

// openForm shows the creation form belonging to the active tab.
func (m *Model) openForm() tea.Cmd {
	var cmd tea.Cmd
	next := m.currentView
	switch m.currentView {
	case ViewTasks:
		next, cmd = ViewTaskForm, m.taskForm.Start()
	case ViewStudy:
		next, cmd = ViewLogForm, m.logForm.Start(clock.Today(m.clock))
	case ViewSchedule:
		next, cmd = ViewDateForm, m.dateForm.Start()
	default:
		return nil
	}
	m.previousView = m.currentView
	m.currentView = next
	return cmd
}

func (m *Model) toggleTheme() {
	t := m.screens.Preferences.ToggleTheme(context.Background())
	theme.Apply(t)
	m.showNotice(fmt.Sprintf("Theme: %s", t), theme.InfoStyle)
}

// activeTimer returns the timer of the active tab, if it has one.
func (m Model) activeTimer() *focus.Timer {
	switch m.currentView {
	case ViewTasks:
		return m.screens.Tasks.Timer()
	case ViewFocus:
		return m.screens.Focus.Timer()
	default:
		return nil
	}
}

// tabIndex returns the position of the active tab, or of the tab an
// overlay was opened from.
func (m Model) tabIndex() int {
	v := m.currentView
	if v > ViewSchedule {
		v = m.previousView
	}
	for i, t := range tabs {
		if t == v {
			return i
		}
	}
	return 0
}

// refresh copies controller state into the list views.
func (m *Model) refresh() {
	now := m.clock.Now()

	m.taskList.SetFilter(m.screens.Tasks.Filter())
	m.taskList.SetTasks(m.screens.Tasks.VisibleTasks(), now)

	m.studyView.SetFilter(m.screens.Analytics.Filter())
	m.studyView.SetEntries(m.screens.Analytics.Entries())

	m.scheduleView.SetDates(m.screens.Schedule.Dates(), now)

	if shown, ok := m.detailView.Task(); ok {
		if t, ok := m.screens.Tasks.Task(shown.ID); ok {
			m.detailView.SetTask(t, now)
		} else {
			m.detailView.Clear()
			if m.currentView == ViewDetail {
				m.currentView = m.previousView
			}
		}
	}
}

func (m *Model) resize() {
	w := m.layout.ContentWidth()
	h := m.layout.ContentHeight()

	listWidth := w - sidePanelWidth
	if listWidth < 20 {
		listWidth = 20
	}
	m.taskList.SetSize(listWidth, h)
	m.detailView.SetSize(w, h)
	m.focusView.SetSize(w, h)
	m.studyView.SetSize(w, h)
	m.scheduleView.SetSize(w, h)
	m.helpView.SetSize(w, h)
	m.commandView.SetSize(w, h)
	m.taskForm.SetSize(w, h)
	m.logForm.SetSize(w, h)
	m.dateForm.SetSize(w, h)
}

func (m *Model) showNotice(text string, style lipgloss.Style) {
	m.noticeText = text
	m.noticeStyle = style
	m.noticeUntil = m.clock.Now().Add(noticeTTL)
}

func noticeStyle(k screen.NoticeKind) lipgloss.Style {
	switch k {
	case screen.NoticeSuccess:
		return theme.SuccessStyle
	case screen.NoticeReward:
		return theme.RewardStyle
	default:
		return theme.InfoStyle
	}
}

func focusData(t *focus.Timer, stats model.FocusStats, total string) focusview.Data {
	return focusview.Data{
		Timer:     t.Snapshot(),
		Remaining: t.Remaining(),
		Progress:  t.Progress(),
		Stats:     stats,
		TotalTime: total,
	}
}
