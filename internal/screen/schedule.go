package screen

import (
	"context"
	"sort"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

// UpcomingWindow is how many days ahead the schedule screen highlights.
const UpcomingWindow = 7

// Schedule is the scheduling screen: the task list plus important dates.
type Schedule struct {
	taskScreen
}

// NewSchedule returns the scheduling screen controller over data, or over
// private data when nil. Call Open before use.
func NewSchedule(d Deps, data *TaskData) *Schedule {
	s := &Schedule{}
	s.setup(d, "schedule", data)
	return s
}

// AddDate records an important date and saves.
func (s *Schedule) AddDate(ctx context.Context, title string, date clock.Date) (model.ImportantDate, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	d, err := s.data.calendar.Add(title, date)
	if err != nil {
		return model.ImportantDate{}, err
	}
	s.save(ctx)
	s.notify(NoticeSuccess, "Important date added! 📆")
	return d, nil
}

// DeleteDate removes an important date. It returns false for an unknown id.
func (s *Schedule) DeleteDate(ctx context.Context, id string) bool {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if !s.data.calendar.Delete(id) {
		return false
	}
	s.save(ctx)
	s.notify(NoticeInfo, "Date removed")
	return true
}

// Dates returns every important date in ascending order.
func (s *Schedule) Dates() []model.ImportantDate {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return s.data.calendar.Dates()
}

// Upcoming returns the important dates within UpcomingWindow days.
func (s *Schedule) Upcoming() []model.ImportantDate {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return s.data.calendar.Upcoming(s.today(), UpcomingWindow)
}

// Deadlines returns active tasks with a deadline, soonest first.
func (s *Schedule) Deadlines() []model.Task {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	var out []model.Task
	for _, t := range s.data.board.Filter(model.FilterActive) {
		if t.Deadline != nil && !t.Deadline.IsZero() {
			out = append(out, t)
		}
	}
	sortByDeadline(out)
	return out
}

func sortByDeadline(ts []model.Task) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].Deadline.Before(*ts[j].Deadline)
	})
}
