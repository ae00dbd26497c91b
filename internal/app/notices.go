package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/wellup/internal/screen"
)

// noticeTTL is how long a notice stays in the status bar.
const noticeTTL = 3 * time.Second

// noticeMsg carries a notice raised by a controller.
type noticeMsg struct {
	notice screen.Notice
}

// tickMsg re-renders the running timers once per second.
type tickMsg time.Time

// waitForNotice returns a command that blocks until the next controller
// notice arrives. Update re-issues it after every delivery. A closed channel
// ends the subscription.
func waitForNotice(ch <-chan screen.Notice) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return noticeMsg{notice: n}
	}
}

// tick schedules the next once-per-second refresh.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
