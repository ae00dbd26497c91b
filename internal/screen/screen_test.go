package screen

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/store"
	"github.com/nhle/wellup/tests/testutil"
)

type recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *recorder) Notify(n Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
}

func (r *recorder) texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, n.Text)
	}
	return out
}

type env struct {
	deps    Deps
	kv      *store.MemoryStore
	clock   *clock.Manual
	sched   *testutil.Scheduler
	notices *recorder
}

func newEnv(t *testing.T) *env {
	t.Helper()
	kv := store.NewMemoryStore()
	c := clock.NewManual(time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC))
	sched := &testutil.Scheduler{}
	rec := &recorder{}
	cfg := model.DefaultAppConfig()
	return &env{
		deps: Deps{
			Gateway:   store.NewGateway(kv),
			Clock:     c,
			Notifier:  rec,
			Scheduler: sched,
			Config:    cfg,
		},
		kv:      kv,
		clock:   c,
		sched:   sched,
		notices: rec,
	}
}

// brokenKV fails every operation.
type brokenKV struct{}

func (brokenKV) Get(context.Context, string) ([]byte, bool, error) { return nil, false, errBroken }
func (brokenKV) Put(context.Context, string, []byte) error          { return errBroken }
func (brokenKV) Delete(context.Context, string) error               { return errBroken }
func (brokenKV) Close() error                                       { return nil }

var errBroken = errors.New("backend unavailable")
