package screen

import (
	"context"
	"fmt"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/studylog"
)

// Analytics is the study log screen.
type Analytics struct {
	base
	log        *studylog.Log
	filter     model.LogFilter
	weekOffset int
}

// NewAnalytics returns the study log controller. Call Open before use.
func NewAnalytics(d Deps) *Analytics {
	s := &Analytics{filter: model.LogFilterAll}
	s.setup(d, "analytics")
	s.log = studylog.NewLog(nil, s.Clock)
	return s
}

// Open loads the study log and returns to the current week.
func (s *Analytics) Open(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.Gateway.LoadAnalytics(ctx)
	s.loadFailed(err)
	s.log = studylog.NewLog(snap.StudyLogs, s.Clock)
	s.weekOffset = 0
}

// LogHours records study hours for a day and saves.
func (s *Analytics) LogHours(ctx context.Context, date clock.Date, hours float64, subject string) (model.StudyLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existed := s.log.HoursOn(date) > 0
	e, err := s.log.LogHours(date, hours, subject)
	if err != nil {
		return model.StudyLogEntry{}, err
	}
	s.save(ctx)
	if existed {
		s.notify(NoticeSuccess, "Updated study hours for this date!")
	} else {
		s.notify(NoticeSuccess, "Study hours logged successfully! 📚")
	}
	return e, nil
}

// DeleteLog removes an entry. It returns false for an unknown id.
func (s *Analytics) DeleteLog(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.log.Delete(id) {
		return false
	}
	s.save(ctx)
	s.notify(NoticeInfo, "Log deleted")
	return true
}

// SetFilter changes the entry list window.
func (s *Analytics) SetFilter(f model.LogFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// Filter returns the active window.
func (s *Analytics) Filter() model.LogFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Entries returns the entries inside the active window, newest first.
func (s *Analytics) Entries() []model.StudyLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Filter(s.filter, s.today())
}

// PrevWeek moves the chart one week back.
func (s *Analytics) PrevWeek() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weekOffset--
}

// NextWeek moves the chart one week forward. It refuses to go past the
// current week and reports whether it moved.
func (s *Analytics) NextWeek() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.weekOffset >= 0 {
		return false
	}
	s.weekOffset++
	return true
}

// WeekOffset returns the chart's distance from the current week.
func (s *Analytics) WeekOffset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weekOffset
}

// Week returns the daily totals of the displayed week.
func (s *Analytics) Week() [7]studylog.DayTotal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.WeekTotals(s.today(), s.weekOffset)
}

// WeekLabel names the displayed week.
func (s *Analytics) WeekLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return WeekLabel(s.weekOffset)
}

// WeekLabel names a week by its offset from the current one.
func WeekLabel(offset int) string {
	switch {
	case offset == 0:
		return "This Week"
	case offset == -1:
		return "Last Week"
	case offset < 0:
		return fmt.Sprintf("%d Weeks Ago", -offset)
	default:
		return fmt.Sprintf("In %d Weeks", offset)
	}
}

// Summary returns the current-week overview.
func (s *Analytics) Summary() studylog.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Summary(s.today())
}

// Insights returns trends against the configured weekly goal.
func (s *Analytics) Insights() studylog.Insights {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Insights(s.today(), s.Config.Study.WeeklyGoalHours)
}

// Snapshot returns a copy of the study log snapshot.
func (s *Analytics) Snapshot() model.AnalyticsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.AnalyticsSnapshot{StudyLogs: s.log.Entries()}
}

func (s *Analytics) save(ctx context.Context) {
	s.saved(s.Gateway.SaveAnalytics(ctx, model.AnalyticsSnapshot{StudyLogs: s.log.Entries()}))
}
