// Package focus implements the Pomodoro timer and the daily session stats.
package focus

import (
	"fmt"
	"sync"
	"time"

	"github.com/nhle/wellup/internal/model"
)

// TickInterval is the countdown granularity.
const TickInterval = time.Second

// Countdown is a remaining duration that prints as MM:SS.
type Countdown time.Duration

func (c Countdown) String() string {
	secs := int(time.Duration(c).Round(time.Second) / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Completion describes a countdown that reached zero.
type Completion struct {
	// Mode is the mode that just finished.
	Mode model.TimerMode
	// Next is the mode the timer switched to.
	Next model.TimerMode
	// Length is the full duration of the finished mode.
	Length time.Duration
}

// Timer is the focus countdown state machine.
//
// Every Start opens a new generation and ticks scheduled by an older
// generation are ignored, so nothing fires after Pause, Reset or SetMode.
type Timer struct {
	mu        sync.Mutex
	durations map[model.TimerMode]time.Duration
	sched     Scheduler

	mode      model.TimerMode
	remaining time.Duration
	running   bool
	gen       uint64
	cancel    func()

	onComplete func(Completion)
}

// NewTimer returns a stopped timer in work mode. Missing durations fall back
// to the defaults.
func NewTimer(durations map[model.TimerMode]time.Duration, sched Scheduler) *Timer {
	d := DefaultDurations()
	for m, v := range durations {
		if m.IsValid() && v > 0 {
			d[m] = v
		}
	}
	if sched == nil {
		sched = TickerScheduler{}
	}
	return &Timer{
		durations: d,
		sched:     sched,
		mode:      model.ModeWork,
		remaining: d[model.ModeWork],
	}
}

// DefaultDurations returns 25, 5 and 15 minutes for the three modes.
func DefaultDurations() map[model.TimerMode]time.Duration {
	return map[model.TimerMode]time.Duration{
		model.ModeWork:       25 * time.Minute,
		model.ModeShortBreak: 5 * time.Minute,
		model.ModeLongBreak:  15 * time.Minute,
	}
}

// OnComplete registers fn to be called whenever a countdown reaches zero.
// fn runs without the timer lock held and may call back into the timer.
func (t *Timer) OnComplete(fn func(Completion)) {
	t.mu.Lock()
	t.onComplete = fn
	t.mu.Unlock()
}

// Duration returns the full length of mode m.
func (t *Timer) Duration(m model.TimerMode) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.durations[m]
}

// Start begins counting down. It does nothing if already running.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}
	t.gen++
	gen := t.gen
	t.running = true
	t.cancel = t.sched.Every(TickInterval, func() { t.tick(gen) })
}

// Pause stops counting down and keeps the remaining time.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Reset stops and restores the full duration of the current mode.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.remaining = t.durations[t.mode]
}

// SetMode stops the timer and switches to mode m at full duration.
func (t *Timer) SetMode(m model.TimerMode) error {
	if !m.IsValid() {
		return &model.ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown timer mode %q", m)}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.mode = m
	t.remaining = t.durations[m]
	return nil
}

// Tick advances a running countdown by one second. A stopped timer ignores it.
func (t *Timer) Tick() {
	t.mu.Lock()
	gen := t.gen
	t.mu.Unlock()
	t.tick(gen)
}

// Snapshot returns the current state.
func (t *Timer) Snapshot() model.TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return model.TimerState{Mode: t.mode, Remaining: t.remaining, Running: t.running}
}

// Remaining returns the time left in the current countdown.
func (t *Timer) Remaining() Countdown {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Countdown(t.remaining)
}

// Progress returns the elapsed fraction of the current countdown.
func (t *Timer) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	total := t.durations[t.mode]
	return float64(total-t.remaining) / float64(total)
}

func (t *Timer) tick(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || !t.running {
		t.mu.Unlock()
		return
	}
	t.remaining -= TickInterval
	if t.remaining > 0 {
		t.mu.Unlock()
		return
	}

	done := Completion{Mode: t.mode, Length: t.durations[t.mode]}
	t.stopLocked()
	if t.mode == model.ModeWork {
		t.mode = model.ModeShortBreak
	} else {
		t.mode = model.ModeWork
	}
	t.remaining = t.durations[t.mode]
	done.Next = t.mode
	hook := t.onComplete
	t.mu.Unlock()

	if hook != nil {
		hook(done)
	}
}

func (t *Timer) stopLocked() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if t.running {
		t.gen++
	}
	t.running = false
}
