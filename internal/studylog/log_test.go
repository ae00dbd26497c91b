package studylog

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

func newLog() *Log {
	return NewLog(nil, clock.NewManual(time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)))
}

func TestLogHours_MergesSameDate(t *testing.T) {
	l := newLog()
	day := clock.NewDate(2024, time.May, 1)

	first, err := l.LogHours(day, 2.0, "Math")
	require.NoError(t, err)
	merged, err := l.LogHours(day, 1.5, "Physics")
	require.NoError(t, err)

	assert.Equal(t, first.ID, merged.ID)
	entries := l.Entries()
	require.Len(t, entries, 1)
	assert.InDelta(t, 3.5, entries[0].Hours, 1e-9)
	assert.Equal(t, "Physics", entries[0].Subject)
}

func TestLogHours_DefaultSubject(t *testing.T) {
	l := newLog()
	e, err := l.LogHours(clock.NewDate(2024, time.May, 1), 1, "   ")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSubject, e.Subject)
}

func TestLogHours_RejectsInvalidHours(t *testing.T) {
	l := newLog()
	day := clock.NewDate(2024, time.May, 1)

	for _, h := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := l.LogHours(day, h, "Math")
		assert.ErrorIs(t, err, model.ErrValidation, "hours=%v", h)
	}
	_, err := l.LogHours(clock.Date{}, 1, "Math")
	assert.ErrorIs(t, err, model.ErrValidation)

	assert.Empty(t, l.Entries())
}

func TestLogHours_SortedNewestFirst(t *testing.T) {
	l := newLog()
	for _, d := range []int{3, 1, 5, 2} {
		_, err := l.LogHours(clock.NewDate(2024, time.May, d), 1, "")
		require.NoError(t, err)
	}

	var days []int
	for _, e := range l.Entries() {
		days = append(days, e.Date.Day)
	}
	assert.Equal(t, []int{5, 3, 2, 1}, days)
}

func TestNewLog_MergesDuplicateDates(t *testing.T) {
	day := clock.NewDate(2024, time.May, 1)
	l := NewLog([]model.StudyLogEntry{
		{ID: "a", Date: day, Hours: 1, Subject: "Math"},
		{ID: "b", Date: day, Hours: 2, Subject: "Art"},
		{ID: "c", Date: day.AddDays(-1), Hours: -3},
	}, clock.System{})

	entries := l.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)
	assert.InDelta(t, 3.0, entries[0].Hours, 1e-9)
	assert.Equal(t, "Art", entries[0].Subject)
}

func TestDelete(t *testing.T) {
	l := newLog()
	e, err := l.LogHours(clock.NewDate(2024, time.May, 1), 1, "")
	require.NoError(t, err)

	assert.False(t, l.Delete("missing"))
	assert.True(t, l.Delete(e.ID))
	assert.Empty(t, l.Entries())
}

func TestWeekTotals(t *testing.T) {
	l := newLog()
	today := clock.NewDate(2024, time.May, 1) // Wednesday
	_, _ = l.LogHours(clock.NewDate(2024, time.April, 29), 2, "")
	_, _ = l.LogHours(today, 1.5, "")
	_, _ = l.LogHours(clock.NewDate(2024, time.April, 22), 4, "")

	week := l.WeekTotals(today, 0)
	assert.Equal(t, clock.NewDate(2024, time.April, 29), week[0].Date)
	assert.Equal(t, clock.NewDate(2024, time.May, 5), week[6].Date)
	assert.InDelta(t, 2.0, week[0].Hours, 1e-9)
	assert.InDelta(t, 1.5, week[2].Hours, 1e-9)
	assert.Zero(t, week[6].Hours)

	prev := l.WeekTotals(today, -1)
	assert.InDelta(t, 4.0, prev[0].Hours, 1e-9)

	next := l.WeekTotals(today, 1)
	for _, d := range next {
		assert.Zero(t, d.Hours)
	}
	assert.Equal(t, clock.NewDate(2024, time.May, 6), next[0].Date)
}

func TestWeekTotals_SundayBelongsToPrecedingWeek(t *testing.T) {
	l := newLog()
	sunday := clock.NewDate(2024, time.May, 5)
	_, _ = l.LogHours(sunday, 3, "")

	week := l.WeekTotals(sunday, 0)

	assert.Equal(t, clock.NewDate(2024, time.April, 29), week[0].Date)
	assert.InDelta(t, 3.0, week[6].Hours, 1e-9)
}

func TestStreakOfDaysLogged(t *testing.T) {
	today := clock.NewDate(2024, time.May, 10)
	tests := []struct {
		name string
		days []int
		want int
	}{
		{"no logs", nil, 0},
		{"today only", []int{0}, 1},
		{"three days through today", []int{0, -1, -2}, 3},
		{"gap breaks the run", []int{0, -1, -3, -4}, 2},
		{"anchored at latest when today is empty", []int{-2, -3}, 2},
		{"future entries ignored", []int{3, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLog()
			for _, d := range tt.days {
				_, err := l.LogHours(today.AddDays(d), 1, "")
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, l.StreakOfDaysLogged(today))
		})
	}
}

func TestFilter(t *testing.T) {
	today := clock.NewDate(2024, time.May, 10)
	l := newLog()
	for _, d := range []int{0, -7, -8, -30, -31} {
		_, err := l.LogHours(today.AddDays(d), 1, "")
		require.NoError(t, err)
	}

	assert.Len(t, l.Filter(model.LogFilterAll, today), 5)
	assert.Len(t, l.Filter(model.LogFilterWeek, today), 2)
	// April 10 onward.
	assert.Len(t, l.Filter(model.LogFilterMonth, today), 4)
}
