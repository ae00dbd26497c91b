package focus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

func TestStats_RecordSession(t *testing.T) {
	today := clock.NewDate(2024, time.May, 1)
	s := NewStats(model.FocusStats{})

	s.RecordSession(today, 25)
	s.RecordSession(today, 25)

	st := s.State()
	assert.Equal(t, 2, st.SessionsToday)
	assert.Equal(t, 50, st.TotalMinutesToday)
	assert.Equal(t, today, *st.LastSessionDate)
	assert.Equal(t, "0h 50m", s.TotalTime())
}

func TestStats_NewDayResets(t *testing.T) {
	yesterday := clock.NewDate(2024, time.May, 1)
	s := NewStats(model.FocusStats{SessionsToday: 4, TotalMinutesToday: 100, LastSessionDate: &yesterday})

	assert.True(t, s.ReconcileDay(yesterday.AddDays(1)))
	st := s.State()
	assert.Equal(t, 0, st.SessionsToday)
	assert.Equal(t, 0, st.TotalMinutesToday)

	assert.False(t, s.ReconcileDay(yesterday.AddDays(1)))
}

func TestStats_RecordOnNewDayStartsFresh(t *testing.T) {
	yesterday := clock.NewDate(2024, time.May, 1)
	s := NewStats(model.FocusStats{SessionsToday: 4, TotalMinutesToday: 100, LastSessionDate: &yesterday})

	s.RecordSession(yesterday.AddDays(1), 25)

	assert.Equal(t, 1, s.State().SessionsToday)
	assert.Equal(t, 25, s.State().TotalMinutesToday)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatMinutes(0))
	assert.Equal(t, "2h 5m", FormatMinutes(125))
}
