package screen

import (
	"context"

	"github.com/nhle/wellup/internal/focus"
	"github.com/nhle/wellup/internal/model"
)

// Focus is the dedicated focus screen. Finished work sessions count toward
// today's stats and pay no XP.
type Focus struct {
	base
	timer *focus.Timer
	stats *focus.Stats
}

// NewFocus returns the focus screen controller. Call Open before use.
func NewFocus(d Deps) *Focus {
	s := &Focus{}
	s.setup(d, "focus")
	s.stats = focus.NewStats(model.FocusStats{})
	s.timer = focus.NewTimer(s.Config.Focus.Durations(), s.Scheduler)
	s.timer.OnComplete(s.sessionComplete)
	return s
}

// Open loads the stats and clears them if they belong to another day.
func (s *Focus) Open(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.Gateway.LoadFocus(ctx)
	s.loadFailed(err)
	s.stats = focus.NewStats(snap.Stats)
	if s.stats.ReconcileDay(s.today()) {
		s.save(ctx)
	}
}

// Timer returns the screen's focus timer.
func (s *Focus) Timer() *focus.Timer {
	return s.timer
}

// Stats returns today's session stats.
func (s *Focus) Stats() model.FocusStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.State()
}

// TotalTime returns today's focused time as "Hh Mm".
func (s *Focus) TotalTime() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.TotalTime()
}

// RefreshDay clears the stats when the day rolled over while the screen was open.
func (s *Focus) RefreshDay(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats.ReconcileDay(s.today()) {
		s.save(ctx)
	}
}

func (s *Focus) save(ctx context.Context) {
	s.saved(s.Gateway.SaveFocus(ctx, model.FocusSnapshot{Stats: s.stats.State()}))
}

func (s *Focus) sessionComplete(c focus.Completion) {
	if c.Mode != model.ModeWork {
		s.notify(NoticeInfo, "✨ Break over! Ready to focus again?")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.RecordSession(s.today(), int(c.Length.Minutes()))
	s.save(context.Background())
	s.notify(NoticeSuccess, "🎉 Work session complete! Time for a break!")
}
