package screen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

func TestAnalytics_LogHoursPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s := NewAnalytics(e.deps)
	s.Open(ctx)
	day := clock.NewDate(2024, time.May, 1)

	_, err := s.LogHours(ctx, day, 2.0, "Math")
	require.NoError(t, err)
	_, err = s.LogHours(ctx, day, 1.5, "Physics")
	require.NoError(t, err)

	reloaded := NewAnalytics(e.deps)
	reloaded.Open(ctx)
	entries := reloaded.Entries()
	require.Len(t, entries, 1)
	assert.InDelta(t, 3.5, entries[0].Hours, 1e-9)
	assert.Equal(t, "Physics", entries[0].Subject)

	assert.Equal(t, []string{
		"Study hours logged successfully! 📚",
		"Updated study hours for this date!",
	}, e.notices.texts())
}

func TestAnalytics_RejectsBadHours(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s := NewAnalytics(e.deps)
	s.Open(ctx)

	_, err := s.LogHours(ctx, clock.Today(e.clock), 0, "Math")
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Empty(t, s.Entries())
}

func TestAnalytics_WeekNavigationStopsAtCurrentWeek(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s := NewAnalytics(e.deps)
	s.Open(ctx)

	assert.False(t, s.NextWeek())
	assert.Equal(t, 0, s.WeekOffset())
	assert.Equal(t, "This Week", s.WeekLabel())

	s.PrevWeek()
	s.PrevWeek()
	assert.Equal(t, "2 Weeks Ago", s.WeekLabel())
	assert.True(t, s.NextWeek())
	assert.Equal(t, "Last Week", s.WeekLabel())
	assert.True(t, s.NextWeek())
	assert.False(t, s.NextWeek())

	week := s.Week()
	assert.Equal(t, clock.NewDate(2024, time.April, 29), week[0].Date)
}

func TestAnalytics_DeleteAndSummary(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s := NewAnalytics(e.deps)
	s.Open(ctx)
	today := clock.Today(e.clock)

	a, _ := s.LogHours(ctx, today, 2, "")
	_, _ = s.LogHours(ctx, today.AddDays(-1), 4, "")

	sum := s.Summary()
	assert.InDelta(t, 6.0, sum.WeekHours, 1e-9)
	assert.Equal(t, 2, sum.DaysLogged)

	in := s.Insights()
	assert.Equal(t, 2, in.Streak)
	assert.InDelta(t, 20.0, in.GoalHours, 1e-9)

	assert.True(t, s.DeleteLog(ctx, a.ID))
	assert.False(t, s.DeleteLog(ctx, a.ID))
	assert.InDelta(t, 4.0, s.Summary().WeekHours, 1e-9)
}

func TestAnalytics_Filter(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s := NewAnalytics(e.deps)
	s.Open(ctx)
	today := clock.Today(e.clock)
	_, _ = s.LogHours(ctx, today, 1, "")
	_, _ = s.LogHours(ctx, today.AddDays(-20), 1, "")

	s.SetFilter(model.LogFilterWeek)
	assert.Equal(t, model.LogFilterWeek, s.Filter())
	assert.Len(t, s.Entries(), 1)

	s.SetFilter(model.LogFilterMonth)
	assert.Len(t, s.Entries(), 2)
}

func TestWeekLabel(t *testing.T) {
	assert.Equal(t, "This Week", WeekLabel(0))
	assert.Equal(t, "Last Week", WeekLabel(-1))
	assert.Equal(t, "3 Weeks Ago", WeekLabel(-3))
	assert.Equal(t, "In 2 Weeks", WeekLabel(2))
}
