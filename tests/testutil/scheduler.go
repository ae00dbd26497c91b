package testutil

import (
	"sync"
	"time"
)

// Scheduler is a focus.Scheduler driven by the test instead of a clock.
type Scheduler struct {
	mu   sync.Mutex
	jobs []*job
}

type job struct {
	fn        func()
	cancelled bool
}

// Every records fn. It runs only when Fire is called.
func (s *Scheduler) Every(_ time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := &job{fn: fn}
	s.jobs = append(s.jobs, j)
	return func() {
		s.mu.Lock()
		j.cancelled = true
		s.mu.Unlock()
	}
}

// Fire runs every live schedule n times.
func (s *Scheduler) Fire(n int) {
	for i := 0; i < n; i++ {
		s.mu.Lock()
		var live []func()
		for _, j := range s.jobs {
			if !j.cancelled {
				live = append(live, j.fn)
			}
		}
		s.mu.Unlock()
		for _, fn := range live {
			fn()
		}
	}
}
