package screen

import (
	"context"
	"sync"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/reward"
	"github.com/nhle/wellup/internal/streak"
	"github.com/nhle/wellup/internal/tasks"
)

// Overview is the reward and task summary shown beside the task list.
type Overview struct {
	Reward    model.RewardState
	Progress  float64
	Streak    int
	Total     int
	Completed int
}

// TaskData is the in-memory wellup-data snapshot. The task and schedule
// screens share one instance, so whichever saves writes the latest state.
type TaskData struct {
	mu       sync.Mutex
	clock    clock.Clock
	ledger   *reward.Ledger
	streak   *streak.Tracker
	board    *tasks.Board
	calendar *tasks.Calendar
}

// NewTaskData returns empty task data dated by c.
func NewTaskData(c clock.Clock) *TaskData {
	if c == nil {
		c = clock.System{}
	}
	d := &TaskData{clock: c}
	d.reset(model.DefaultDataSnapshot())
	return d
}

func (d *TaskData) reset(snap model.DataSnapshot) {
	d.ledger = reward.NewLedger(snap.RewardState)
	d.streak = streak.NewTracker(snap.StreakState)
	d.board = tasks.NewBoard(snap.Tasks, d.ledger, d.streak, d.clock)
	d.calendar = tasks.NewCalendar(snap.ImportantDates, d.clock)
}

func (d *TaskData) snapshot() model.DataSnapshot {
	return model.DataSnapshot{
		Tasks:          d.board.Tasks(),
		ImportantDates: d.calendar.Dates(),
		RewardState:    d.ledger.State(),
		StreakState:    d.streak.State(),
	}
}

// taskScreen is the task-list behavior shared by the task and schedule
// screens. The data lock guards the snapshot and the screen lock guards
// only the filter.
type taskScreen struct {
	base

	data   *TaskData
	filter model.TaskFilter
}

func (s *taskScreen) setup(d Deps, name string, data *TaskData) {
	s.base.setup(d, name)
	s.filter = model.FilterAll
	if data == nil {
		data = NewTaskData(s.Clock)
	}
	s.data = data
}

// save writes the shared snapshot. The caller holds the data lock.
func (s *taskScreen) save(ctx context.Context) {
	s.saved(s.Gateway.SaveData(ctx, s.data.snapshot()))
}

// Open reloads the shared snapshot and decays a broken streak.
func (s *taskScreen) Open(ctx context.Context) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	snap, err := s.Gateway.LoadData(ctx)
	s.loadFailed(err)
	s.data.reset(snap)
	if s.data.streak.ReconcileOnLoad(s.today()) {
		s.Logger.Info("streak reset", "last", s.data.streak.State().LastCompletionDate)
		s.save(ctx)
	}
}

// AddTask creates a task and saves.
func (s *taskScreen) AddTask(ctx context.Context, title string, deadline *clock.Date, p model.Priority) (model.Task, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	t, err := s.data.board.Add(title, deadline, p)
	if err != nil {
		return model.Task{}, err
	}
	s.save(ctx)
	s.notify(NoticeSuccess, "Task added successfully! 🎯")
	return t, nil
}

// ToggleTask flips a task's completion. It returns false for an unknown id.
func (s *taskScreen) ToggleTask(ctx context.Context, id string) (tasks.ToggleResult, bool) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	res, ok := s.data.board.Toggle(id)
	if !ok {
		return res, false
	}
	s.save(ctx)
	if res.Task.Completed {
		s.notify(NoticeReward, "+%d XP! Great work! 🎉", res.Task.XPValue)
		s.notifyLevelUps(res.LevelUps)
	}
	return res, true
}

// DeleteTask removes a task. It returns false for an unknown id.
func (s *taskScreen) DeleteTask(ctx context.Context, id string) bool {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, ok := s.data.board.Delete(id); !ok {
		return false
	}
	s.save(ctx)
	s.notify(NoticeInfo, "Task deleted")
	return true
}

// SetFilter changes the visible subset of tasks.
func (s *taskScreen) SetFilter(f model.TaskFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// Filter returns the active filter.
func (s *taskScreen) Filter() model.TaskFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// VisibleTasks returns the tasks matched by the active filter.
func (s *taskScreen) VisibleTasks() []model.Task {
	f := s.Filter()
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return s.data.board.Filter(f)
}

// Task returns a single task.
func (s *taskScreen) Task(id string) (model.Task, bool) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return s.data.board.Get(id)
}

// Overview returns level, XP, streak and task counts.
func (s *taskScreen) Overview() Overview {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	total, completed := s.data.board.Counts()
	return Overview{
		Reward:    s.data.ledger.State(),
		Progress:  s.data.ledger.Progress(),
		Streak:    s.data.streak.Streak(),
		Total:     total,
		Completed: completed,
	}
}

// Snapshot returns a copy of the shared data snapshot.
func (s *taskScreen) Snapshot() model.DataSnapshot {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return s.data.snapshot()
}
