package screen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

func TestSchedule_DatesPersistAndSort(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s := NewSchedule(e.deps, nil)
	s.Open(ctx)
	today := clock.Today(e.clock)

	late, err := s.AddDate(ctx, "Exam", today.AddDays(20))
	require.NoError(t, err)
	soon, err := s.AddDate(ctx, "Birthday", today.AddDays(2))
	require.NoError(t, err)

	reloaded := NewSchedule(e.deps, nil)
	reloaded.Open(ctx)
	dates := reloaded.Dates()
	require.Len(t, dates, 2)
	assert.Equal(t, soon.ID, dates[0].ID)
	assert.Equal(t, late.ID, dates[1].ID)

	upcoming := reloaded.Upcoming()
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Birthday", upcoming[0].Title)

	assert.True(t, reloaded.DeleteDate(ctx, soon.ID))
	assert.False(t, reloaded.DeleteDate(ctx, "missing"))
	assert.Contains(t, e.notices.texts(), "Important date added! 📆")
	assert.Contains(t, e.notices.texts(), "Date removed")
}

func TestSchedule_AddDateValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s := NewSchedule(e.deps, nil)
	s.Open(ctx)

	_, err := s.AddDate(ctx, "", clock.Today(e.clock))
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Empty(t, s.Dates())
}

func TestSchedule_SharesTasksWithHome(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	home := NewTasks(e.deps, nil)
	home.Open(ctx)
	task, err := home.AddTask(ctx, "Essay", nil, model.PriorityMedium)
	require.NoError(t, err)

	s := NewSchedule(e.deps, nil)
	s.Open(ctx)
	res, ok := s.ToggleTask(ctx, task.ID)
	require.True(t, ok)
	assert.True(t, res.Task.Completed)

	home.Open(ctx)
	assert.Equal(t, 20, home.Overview().Reward.XP)
	got, ok := home.Task(task.ID)
	require.True(t, ok)
	assert.True(t, got.Completed)
}

func TestSchedule_KeepsXPEarnedOnHomeTimer(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.deps.Config.Focus.WorkMinutes = 1
	set := NewSet(e.deps)
	set.OpenAll(ctx)

	set.Tasks.Timer().Start()
	e.sched.Fire(60)
	saved, err := e.deps.Gateway.LoadData(ctx)
	require.NoError(t, err)
	require.Equal(t, 15, saved.XP)

	_, err = set.Schedule.AddDate(ctx, "Exam", clock.Today(e.clock).AddDays(3))
	require.NoError(t, err)

	saved, err = e.deps.Gateway.LoadData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, saved.XP)
	assert.Len(t, saved.ImportantDates, 1)
	assert.Equal(t, 15, set.Schedule.Overview().Reward.XP)

	set.Tasks.Open(ctx)
	assert.Equal(t, 15, set.Tasks.Overview().Reward.XP)
}

func TestSchedule_SharedDataSeesHomeChangesWithoutReload(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	set := NewSet(e.deps)
	set.OpenAll(ctx)

	task, err := set.Tasks.AddTask(ctx, "Lab report", nil, model.PriorityHigh)
	require.NoError(t, err)

	got, ok := set.Schedule.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, "Lab report", got.Title)

	set.Schedule.SetFilter(model.FilterCompleted)
	assert.Equal(t, model.FilterAll, set.Tasks.Filter(), "filters stay per screen")
	assert.Len(t, set.Tasks.VisibleTasks(), 1)
	assert.Empty(t, set.Schedule.VisibleTasks())
}

func TestSchedule_DeadlinesSoonestFirst(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s := NewSchedule(e.deps, nil)
	s.Open(ctx)
	today := clock.Today(e.clock)

	far := today.AddDays(9)
	near := today.AddDays(1)
	_, _ = s.AddTask(ctx, "far", &far, model.PriorityLow)
	_, _ = s.AddTask(ctx, "none", nil, model.PriorityLow)
	nearTask, _ := s.AddTask(ctx, "near", &near, model.PriorityLow)
	done, _ := s.AddTask(ctx, "done", &near, model.PriorityLow)
	s.ToggleTask(ctx, done.ID)

	got := s.Deadlines()
	require.Len(t, got, 2)
	assert.Equal(t, nearTask.ID, got[0].ID)
	assert.Equal(t, "far", got[1].Title)
}
