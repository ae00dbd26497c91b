// Package screen holds one controller per screen. Each controller owns its
// state, reads its snapshot on Open and writes it after every mutation.
// Save failures are logged and the in-memory state stays authoritative.
package screen

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/focus"
	"github.com/nhle/wellup/internal/logging"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/reward"
	"github.com/nhle/wellup/internal/store"
)

// Deps are the collaborators shared by every controller.
type Deps struct {
	Gateway   *store.Gateway
	Clock     clock.Clock
	Logger    *slog.Logger
	Notifier  Notifier
	Scheduler focus.Scheduler
	Config    *model.AppConfig
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = clock.System{}
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.Notifier == nil {
		d.Notifier = NopNotifier{}
	}
	if d.Scheduler == nil {
		d.Scheduler = focus.TickerScheduler{}
	}
	if d.Config == nil {
		d.Config = model.DefaultAppConfig()
	}
	return d
}

// base carries the lock and the persistence helpers common to controllers.
type base struct {
	mu sync.Mutex
	Deps
	screen string
}

func (b *base) setup(d Deps, screen string) {
	d = d.withDefaults()
	d.Logger = d.Logger.With("screen", screen)
	b.Deps = d
	b.screen = screen
}

func (b *base) today() clock.Date {
	return clock.Today(b.Clock)
}

func (b *base) notify(kind NoticeKind, format string, args ...any) {
	b.Notifier.Notify(Notice{Kind: kind, Text: fmt.Sprintf(format, args...)})
}

// loadFailed logs a failed read. The screen continues from defaults.
func (b *base) loadFailed(err error) {
	if err != nil {
		b.Logger.Error("loading snapshot failed, starting from defaults", "err", err)
	}
}

// saved logs a failed write and swallows it.
func (b *base) saved(err error) {
	if err != nil {
		b.Logger.Error("saving snapshot failed", "err", err)
	}
}

func (b *base) notifyLevelUps(ups []reward.LevelUp) {
	for _, up := range ups {
		b.notify(NoticeReward, "🎊 Level Up! You're now Level %d!", up.Level)
	}
}
