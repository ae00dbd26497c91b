package studylog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/wellup/internal/clock"
)

func TestSummary(t *testing.T) {
	today := clock.NewDate(2024, time.May, 1)
	l := newLog()
	_, _ = l.LogHours(clock.NewDate(2024, time.April, 29), 2, "")
	_, _ = l.LogHours(today, 3, "")
	_, _ = l.LogHours(clock.NewDate(2024, time.April, 20), 9, "")

	s := l.Summary(today)

	assert.InDelta(t, 5.0, s.WeekHours, 1e-9)
	assert.InDelta(t, 2.5, s.AvgPerDay, 1e-9)
	assert.Equal(t, 2, s.DaysLogged)
	assert.InDelta(t, 3.0, s.TodayHours, 1e-9)
}

func TestSummary_Empty(t *testing.T) {
	s := newLog().Summary(clock.NewDate(2024, time.May, 1))
	assert.Equal(t, Summary{}, s)
}

func TestInsights(t *testing.T) {
	today := clock.NewDate(2024, time.May, 1) // Wednesday
	l := newLog()
	_, _ = l.LogHours(clock.NewDate(2024, time.April, 29), 2, "") // Monday
	_, _ = l.LogHours(clock.NewDate(2024, time.April, 30), 3, "") // Tuesday
	_, _ = l.LogHours(today, 4, "")
	_, _ = l.LogHours(clock.NewDate(2024, time.April, 22), 3, "") // Monday

	in := l.Insights(today, 20)

	assert.Equal(t, time.Monday, in.BestWeekday)
	assert.InDelta(t, 5.0, in.BestWeekdayHours, 1e-9)
	assert.Equal(t, 3, in.Streak)
	assert.InDelta(t, 9.0, in.WeekHours, 1e-9)
	assert.False(t, in.GoalReached)
	assert.InDelta(t, 45.0, in.GoalPercent(), 1e-9)
}

func TestInsights_GoalReached(t *testing.T) {
	today := clock.NewDate(2024, time.May, 1)
	l := newLog()
	_, _ = l.LogHours(today, 12, "")

	in := l.Insights(today, 10)

	assert.True(t, in.GoalReached)
	assert.Equal(t, time.Wednesday, in.BestWeekday)
}

func TestInsights_NoData(t *testing.T) {
	in := newLog().Insights(clock.NewDate(2024, time.May, 1), 20)
	assert.Zero(t, in.BestWeekdayHours)
	assert.Zero(t, in.Streak)
	assert.Zero(t, in.GoalPercent())
}
