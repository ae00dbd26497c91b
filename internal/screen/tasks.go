package screen

import (
	"context"

	"github.com/nhle/wellup/internal/focus"
	"github.com/nhle/wellup/internal/model"
)

// Tasks is the home screen: the task list, the reward panel and a focus
// timer that pays XP for finished work sessions.
type Tasks struct {
	taskScreen
	timer *focus.Timer
}

// NewTasks returns the home screen controller over data, or over private
// data when nil. Call Open before use.
func NewTasks(d Deps, data *TaskData) *Tasks {
	s := &Tasks{}
	s.setup(d, "tasks", data)
	s.timer = focus.NewTimer(s.Config.Focus.Durations(), s.Scheduler)
	s.timer.OnComplete(s.sessionComplete)
	return s
}

// Timer returns the screen's focus timer.
func (s *Tasks) Timer() *focus.Timer {
	return s.timer
}

func (s *Tasks) sessionComplete(c focus.Completion) {
	if c.Mode != model.ModeWork {
		s.notify(NoticeInfo, "✨ Break over! Ready to focus again?")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	ups := s.data.ledger.Award(s.Config.Focus.SessionXP)
	s.save(context.Background())
	s.notify(NoticeSuccess, "🎉 Work session complete! Time for a break!")
	s.notifyLevelUps(ups)
}
