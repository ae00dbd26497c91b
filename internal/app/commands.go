package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/focus"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/theme"
	"github.com/nhle/wellup/internal/ui"
	helpview "github.com/nhle/wellup/internal/ui/help"
)

// paletteCommands lists the command palette entries in help order.
var paletteCommands = []helpview.Command{
	{Usage: "task [title]", Desc: "add a task, opening the form without a title"},
	{Usage: "log [hours [subject]]", Desc: "log study hours for today"},
	{Usage: "date", Desc: "add an important date"},
	{Usage: "filter <name>", Desc: "filter tasks (all, active, completed, high) or study logs (all, week, month)"},
	{Usage: "mode <work|short|long>", Desc: "switch the timer mode"},
	{Usage: "start | pause | reset", Desc: "control the timer"},
	{Usage: "tasks | focus | study | schedule", Desc: "switch screen"},
	{Usage: "theme", Desc: "toggle light and dark"},
	{Usage: "help", Desc: "show this help"},
	{Usage: "quit", Desc: "exit"},
}

func paletteHelp() []helpview.Command {
	return paletteCommands
}

func paletteSuggestions() []string {
	return []string{
		"task", "log", "date",
		"filter all", "filter active", "filter completed", "filter high", "filter week", "filter month",
		"mode work", "mode short", "mode long",
		"start", "pause", "reset",
		"tasks", "focus", "study", "schedule",
		"theme", "help", "quit",
	}
}

// describeCommand returns the help line of the palette entry the first word
// of input names.
func describeCommand(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	name := strings.ToLower(fields[0])
	for _, c := range paletteCommands {
		for _, alt := range strings.Split(c.Usage, " | ") {
			word, _, _ := strings.Cut(strings.TrimSpace(alt), " ")
			if word == name {
				return c.Desc
			}
		}
	}
	return ""
}

// executeCommand handles a command string from the command palette.
func (m *Model) executeCommand(input string) tea.Cmd {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]
	rest := strings.Join(args, " ")

	switch name {
	case "quit", "q":
		m.screens.Stop()
		return tea.Quit

	case "tasks", "home":
		m.switchTo(ViewTasks)
	case "focus":
		m.switchTo(ViewFocus)
	case "study", "analytics":
		m.switchTo(ViewStudy)
	case "schedule", "dates":
		m.switchTo(ViewSchedule)

	case "task", "new", "add":
		if rest != "" {
			return m.addTask(rest, nil, model.PriorityMedium)
		}
		m.switchTo(ViewTasks)
		return m.openForm()

	case "log":
		if len(args) == 0 {
			m.switchTo(ViewStudy)
			return m.openForm()
		}
		hours, err := ui.ParseHours(args[0])
		if err != nil {
			m.showNotice(err.Error(), theme.ErrorStyle)
			return nil
		}
		return m.logHours(clock.Today(m.clock), hours, strings.Join(args[1:], " "))

	case "date":
		m.switchTo(ViewSchedule)
		return m.openForm()

	case "filter":
		m.applyFilter(rest)

	case "mode":
		mode, err := model.ParseTimerMode(rest)
		if err != nil {
			m.showNotice(err.Error(), theme.ErrorStyle)
			return nil
		}
		_ = m.commandTimer().SetMode(mode)

	case "start":
		m.commandTimer().Start()
	case "pause":
		m.commandTimer().Pause()
	case "reset":
		m.commandTimer().Reset()

	case "theme":
		m.toggleTheme()

	case "help":
		m.previousView = m.currentView
		m.currentView = ViewHelp

	default:
		m.showNotice(fmt.Sprintf("unknown command %q", name), theme.ErrorStyle)
	}
	return nil
}

// applyFilter routes a filter name to the study log on the study screen and
// to the task list everywhere else.
func (m *Model) applyFilter(name string) {
	if m.currentView == ViewStudy {
		f, err := model.ParseLogFilter(name)
		if err != nil {
			m.showNotice(err.Error(), theme.ErrorStyle)
			return
		}
		m.screens.Analytics.SetFilter(f)
	} else {
		f, err := model.ParseTaskFilter(name)
		if err != nil {
			m.showNotice(err.Error(), theme.ErrorStyle)
			return
		}
		m.screens.Tasks.SetFilter(f)
	}
	m.refresh()
}

// commandTimer is the timer palette commands act on: the active tab's, or
// the focus screen's when the tab has none.
func (m *Model) commandTimer() *focus.Timer {
	if t := m.activeTimer(); t != nil {
		return t
	}
	return m.screens.Focus.Timer()
}
