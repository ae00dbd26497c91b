package screen

import "context"

// Set is one controller per screen, sharing the same dependencies.
type Set struct {
	Tasks       *Tasks
	Schedule    *Schedule
	Focus       *Focus
	Analytics   *Analytics
	Preferences *Preferences
}

// NewSet builds every controller from d. The task and schedule screens
// share one TaskData.
func NewSet(d Deps) *Set {
	data := NewTaskData(d.Clock)
	return &Set{
		Tasks:       NewTasks(d, data),
		Schedule:    NewSchedule(d, data),
		Focus:       NewFocus(d),
		Analytics:   NewAnalytics(d),
		Preferences: NewPreferences(d),
	}
}

// OpenAll loads every controller's snapshot.
func (s *Set) OpenAll(ctx context.Context) {
	s.Preferences.Open(ctx)
	s.Tasks.Open(ctx)
	s.Focus.Open(ctx)
	s.Analytics.Open(ctx)
}

// Stop pauses both focus timers so no tick fires after shutdown.
func (s *Set) Stop() {
	s.Tasks.Timer().Pause()
	s.Focus.Timer().Pause()
}
