package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

var today = clock.NewDate(2024, time.May, 10)

func dateRef(d clock.Date) *clock.Date { return &d }

func TestRecordCompletion_FirstEver(t *testing.T) {
	tr := NewTracker(model.StreakState{})

	assert.True(t, tr.RecordCompletion(today))
	assert.Equal(t, 1, tr.Streak())
	assert.Equal(t, today, *tr.State().LastCompletionDate)
}

func TestRecordCompletion_SameDayIsIdempotent(t *testing.T) {
	tr := NewTracker(model.StreakState{})
	tr.RecordCompletion(today)

	assert.False(t, tr.RecordCompletion(today))
	assert.Equal(t, 1, tr.Streak())
}

func TestRecordCompletion_ConsecutiveDays(t *testing.T) {
	tr := NewTracker(model.StreakState{Streak: 4, LastCompletionDate: dateRef(today.AddDays(-1))})

	assert.True(t, tr.RecordCompletion(today))
	assert.Equal(t, 5, tr.Streak())
	assert.Equal(t, today, *tr.State().LastCompletionDate)
}

func TestRecordCompletion_GapRestarts(t *testing.T) {
	tr := NewTracker(model.StreakState{Streak: 4, LastCompletionDate: dateRef(today.AddDays(-2))})

	tr.RecordCompletion(today)
	assert.Equal(t, 1, tr.Streak())
}

func TestReconcileOnLoad(t *testing.T) {
	tests := []struct {
		name        string
		state       model.StreakState
		wantStreak  int
		wantChanged bool
	}{
		{"never completed", model.StreakState{}, 0, false},
		{"completed today", model.StreakState{Streak: 3, LastCompletionDate: dateRef(today)}, 3, false},
		{"completed yesterday", model.StreakState{Streak: 3, LastCompletionDate: dateRef(today.AddDays(-1))}, 3, false},
		{"missed a day", model.StreakState{Streak: 3, LastCompletionDate: dateRef(today.AddDays(-2))}, 0, true},
		{"already decayed", model.StreakState{Streak: 0, LastCompletionDate: dateRef(today.AddDays(-9))}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(tt.state)
			assert.Equal(t, tt.wantChanged, tr.ReconcileOnLoad(today))
			assert.Equal(t, tt.wantStreak, tr.Streak())
			assert.Equal(t, tt.state.LastCompletionDate, tr.State().LastCompletionDate)
		})
	}
}

func TestScenario_CompleteTwiceThenSkipDays(t *testing.T) {
	tr := NewTracker(model.StreakState{})

	tr.RecordCompletion(today)
	assert.Equal(t, 1, tr.Streak())

	tr.RecordCompletion(today)
	assert.Equal(t, 1, tr.Streak())

	tr = NewTracker(model.StreakState{Streak: tr.Streak(), LastCompletionDate: dateRef(today.AddDays(-3))})
	tr.ReconcileOnLoad(today)
	assert.Equal(t, 0, tr.Streak())
}

func TestState_ReturnsCopy(t *testing.T) {
	tr := NewTracker(model.StreakState{})
	tr.RecordCompletion(today)

	s := tr.State()
	*s.LastCompletionDate = today.AddDays(5)

	assert.Equal(t, today, *tr.State().LastCompletionDate)
}
