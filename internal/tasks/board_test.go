package tasks

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/reward"
	"github.com/nhle/wellup/internal/streak"
)

type fixture struct {
	board  *Board
	ledger *reward.Ledger
	streak *streak.Tracker
	clock  *clock.Manual
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := clock.NewManual(time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC))
	l := reward.NewLedger(model.DefaultRewardState())
	s := streak.NewTracker(model.StreakState{})
	return &fixture{
		board:  NewBoard(nil, l, s, c),
		ledger: l,
		streak: s,
		clock:  c,
	}
}

func TestBoard_AddInsertsAtFront(t *testing.T) {
	f := newFixture(t)

	first, err := f.board.Add("Read chapter 3", nil, model.PriorityLow)
	require.NoError(t, err)
	second, err := f.board.Add("  Write essay  ", nil, model.PriorityMedium)
	require.NoError(t, err)

	assert.Equal(t, "Write essay", second.Title)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, second.Completed)

	tasks := f.board.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, second.ID, tasks[0].ID)
	assert.Equal(t, first.ID, tasks[1].ID)
}

func TestBoard_AddRejectsBlankTitle(t *testing.T) {
	f := newFixture(t)

	_, err := f.board.Add("   ", nil, model.PriorityHigh)

	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "title", ve.Field)
	assert.True(t, errors.Is(err, model.ErrValidation))
	assert.Empty(t, f.board.Tasks())
}

func TestBoard_AddRejectsUnknownPriority(t *testing.T) {
	f := newFixture(t)

	_, err := f.board.Add("Task", nil, model.Priority("urgent"))
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Empty(t, f.board.Tasks())
}

func TestBoard_AddFreezesXPValue(t *testing.T) {
	f := newFixture(t)
	deadline := clock.Today(f.clock).AddDays(5)

	task, err := f.board.Add("Essay", &deadline, model.PriorityMedium)
	require.NoError(t, err)
	assert.Equal(t, 25, task.XPValue)

	// Moving closer to the deadline does not change the stored value.
	f.clock.Advance(4 * 24 * time.Hour)
	got, ok := f.board.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, 25, got.XPValue)
}

func TestBoard_ToggleCompletesAndAwards(t *testing.T) {
	f := newFixture(t)
	deadline := clock.Today(f.clock).AddDays(5)
	task, err := f.board.Add("Essay", &deadline, model.PriorityMedium)
	require.NoError(t, err)

	res, ok := f.board.Toggle(task.ID)

	require.True(t, ok)
	assert.True(t, res.Task.Completed)
	assert.Equal(t, 25, res.XPDelta)
	assert.True(t, res.StreakAdvanced)
	assert.Equal(t, model.RewardState{Level: 1, XP: 25, XPNeeded: 100, TasksCompleted: 1}, f.ledger.State())
	assert.Equal(t, 1, f.streak.Streak())
}

func TestBoard_ToggleTwiceRestoresXPButNotStreak(t *testing.T) {
	f := newFixture(t)
	task, err := f.board.Add("Essay", nil, model.PriorityHigh)
	require.NoError(t, err)

	f.board.Toggle(task.ID)
	res, ok := f.board.Toggle(task.ID)

	require.True(t, ok)
	assert.False(t, res.Task.Completed)
	assert.Equal(t, -30, res.XPDelta)
	assert.Equal(t, model.DefaultRewardState(), f.ledger.State())
	assert.Equal(t, 1, f.streak.Streak(), "streak is a ratchet")
}

func TestBoard_ReopenKeepsLevel(t *testing.T) {
	f := newFixture(t)
	f.ledger = reward.NewLedger(model.RewardState{Level: 1, XP: 90, XPNeeded: 100})
	f.board = NewBoard(nil, f.ledger, f.streak, f.clock)
	task, err := f.board.Add("Essay", nil, model.PriorityHigh)
	require.NoError(t, err)

	res, _ := f.board.Toggle(task.ID)
	require.Len(t, res.LevelUps, 1)
	assert.Equal(t, 2, res.LevelUps[0].Level)

	f.board.Toggle(task.ID)

	st := f.ledger.State()
	assert.Equal(t, 2, st.Level)
	assert.Equal(t, 150, st.XPNeeded)
	assert.Equal(t, 0, st.XP)
}

func TestBoard_ToggleUnknownIsNoop(t *testing.T) {
	f := newFixture(t)
	_, err := f.board.Add("Essay", nil, model.PriorityLow)
	require.NoError(t, err)

	_, ok := f.board.Toggle("missing")

	assert.False(t, ok)
	assert.Equal(t, model.DefaultRewardState(), f.ledger.State())
}

func TestBoard_DeleteCompletedClampsXP(t *testing.T) {
	f := newFixture(t)
	task, err := f.board.Add("Essay", nil, model.PriorityHigh)
	require.NoError(t, err)
	f.board.Toggle(task.ID)

	// Spend most of the XP elsewhere so the task is worth more than the balance.
	f.ledger.Revoke(25)
	require.Equal(t, 5, f.ledger.State().XP)

	deleted, ok := f.board.Delete(task.ID)

	require.True(t, ok)
	assert.Equal(t, task.ID, deleted.ID)
	assert.Empty(t, f.board.Tasks())
	assert.Equal(t, 0, f.ledger.State().XP)
	assert.Equal(t, 0, f.ledger.State().TasksCompleted)
	assert.Equal(t, 1, f.streak.Streak())
}

func TestBoard_DeleteActiveLeavesLedger(t *testing.T) {
	f := newFixture(t)
	task, err := f.board.Add("Essay", nil, model.PriorityHigh)
	require.NoError(t, err)

	_, ok := f.board.Delete(task.ID)
	require.True(t, ok)
	assert.Equal(t, model.DefaultRewardState(), f.ledger.State())

	_, ok = f.board.Delete(task.ID)
	assert.False(t, ok)
}

func TestBoard_Filter(t *testing.T) {
	f := newFixture(t)
	low, _ := f.board.Add("low", nil, model.PriorityLow)
	high, _ := f.board.Add("high", nil, model.PriorityHigh)
	doneHigh, _ := f.board.Add("done high", nil, model.PriorityHigh)
	f.board.Toggle(doneHigh.ID)

	ids := func(ts []model.Task) []string {
		out := make([]string, 0, len(ts))
		for _, t := range ts {
			out = append(out, t.ID)
		}
		return out
	}

	assert.Equal(t, []string{doneHigh.ID, high.ID, low.ID}, ids(f.board.Filter(model.FilterAll)))
	assert.Equal(t, []string{high.ID, low.ID}, ids(f.board.Filter(model.FilterActive)))
	assert.Equal(t, []string{doneHigh.ID}, ids(f.board.Filter(model.FilterCompleted)))
	assert.Equal(t, []string{high.ID}, ids(f.board.Filter(model.FilterHighPriorityActive)))

	total, completed := f.board.Counts()
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, completed)
}

func TestBoard_FilterReturnsCopy(t *testing.T) {
	f := newFixture(t)
	task, _ := f.board.Add("Essay", nil, model.PriorityLow)

	view := f.board.Filter(model.FilterAll)
	view[0].Title = "changed"

	got, _ := f.board.Get(task.ID)
	assert.Equal(t, "Essay", got.Title)
}

func TestBoard_StreakAcrossDays(t *testing.T) {
	f := newFixture(t)
	a, _ := f.board.Add("a", nil, model.PriorityLow)
	b, _ := f.board.Add("b", nil, model.PriorityLow)
	c, _ := f.board.Add("c", nil, model.PriorityLow)

	f.board.Toggle(a.ID)
	res, _ := f.board.Toggle(b.ID)
	assert.False(t, res.StreakAdvanced)
	assert.Equal(t, 1, f.streak.Streak())

	f.clock.Advance(24 * time.Hour)
	f.board.Toggle(c.ID)
	assert.Equal(t, 2, f.streak.Streak())
}

func TestBoard_ReadsDoNotShareDeadlines(t *testing.T) {
	f := newFixture(t)
	due := clock.NewDate(2024, time.May, 10)
	added, err := f.board.Add("Lab report", &due, model.PriorityHigh)
	require.NoError(t, err)

	*added.Deadline = clock.NewDate(2030, time.January, 1)
	got, ok := f.board.Get(added.ID)
	require.True(t, ok)
	*got.Deadline = clock.NewDate(2030, time.January, 1)
	f.board.Filter(model.FilterAll)[0].Deadline.Day = 1

	again, ok := f.board.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, due, *again.Deadline)
}

func TestNewBoard_DropsZeroDeadlines(t *testing.T) {
	c := clock.NewManual(time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC))
	var zero clock.Date
	b := NewBoard([]model.Task{{ID: "1", Title: "Read", Priority: model.PriorityLow, Deadline: &zero}},
		reward.NewLedger(model.DefaultRewardState()), streak.NewTracker(model.StreakState{}), c)

	got, ok := b.Get("1")
	require.True(t, ok)
	assert.Nil(t, got.Deadline)
	assert.Nil(t, b.Tasks()[0].Deadline)
}
