package studylog

import (
	"time"

	"github.com/nhle/wellup/internal/clock"
)

// Summary is the current-week overview.
type Summary struct {
	WeekHours  float64
	AvgPerDay  float64
	DaysLogged int
	TodayHours float64
}

// Summary aggregates the week containing today. The average is taken over
// days with hours.
func (l *Log) Summary(today clock.Date) Summary {
	var s Summary
	for _, d := range l.WeekTotals(today, 0) {
		s.WeekHours += d.Hours
		if d.Hours > 0 {
			s.DaysLogged++
		}
	}
	if s.DaysLogged > 0 {
		s.AvgPerDay = s.WeekHours / float64(s.DaysLogged)
	}
	s.TodayHours = l.HoursOn(today)
	return s
}

// Insights are derived trends over the whole log.
type Insights struct {
	// BestWeekday is meaningful only when BestWeekdayHours > 0.
	BestWeekday      time.Weekday
	BestWeekdayHours float64

	Streak int

	WeekHours   float64
	GoalHours   float64
	GoalReached bool
}

// GoalPercent returns week hours as a percentage of the goal.
func (in Insights) GoalPercent() float64 {
	if in.GoalHours <= 0 {
		return 0
	}
	return in.WeekHours / in.GoalHours * 100
}

// Insights computes the most productive weekday across all entries, the
// consistency streak and progress toward a weekly goal.
func (l *Log) Insights(today clock.Date, goalHours float64) Insights {
	var byDay [7]float64
	for _, e := range l.entries {
		byDay[e.Date.Weekday()] += e.Hours
	}
	in := Insights{GoalHours: goalHours}
	// Monday first so ties resolve the way the week is displayed.
	for i := 0; i < 7; i++ {
		wd := time.Weekday((i + 1) % 7)
		if byDay[wd] > in.BestWeekdayHours {
			in.BestWeekday = wd
			in.BestWeekdayHours = byDay[wd]
		}
	}
	in.Streak = l.StreakOfDaysLogged(today)
	in.WeekHours = l.Summary(today).WeekHours
	in.GoalReached = goalHours > 0 && in.WeekHours >= goalHours
	return in
}
