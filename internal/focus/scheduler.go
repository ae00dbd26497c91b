package focus

import (
	"sync"
	"time"
)

// Scheduler runs fn repeatedly every d until the returned cancel is called.
// Cancel must not block waiting for an in-flight fn.
type Scheduler interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// TickerScheduler runs each schedule on its own goroutine driven by a
// time.Ticker.
type TickerScheduler struct{}

// Every starts a goroutine calling fn on every tick until cancelled.
func (TickerScheduler) Every(d time.Duration, fn func()) func() {
	stopCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(stopCh) })
	}
}
