package screen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/store"
)

func TestPreferences_ToggleTheme(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := NewPreferences(e.deps)
	p.Open(ctx)
	assert.Equal(t, model.ThemeDark, p.Theme())

	assert.Equal(t, model.ThemeLight, p.ToggleTheme(ctx))

	raw, found, err := e.kv.Get(ctx, store.KeyTheme)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "light", string(raw))

	again := NewPreferences(e.deps)
	again.Open(ctx)
	assert.Equal(t, model.ThemeLight, again.Theme())
}

func TestChanNotifier_DropsWhenFull(t *testing.T) {
	n := NewChanNotifier(1)
	n.Notify(Notice{Text: "first"})
	n.Notify(Notice{Text: "second"})

	got := <-n.C()
	assert.Equal(t, "first", got.Text)
	select {
	case extra := <-n.C():
		t.Fatalf("unexpected notice %q", extra.Text)
	default:
	}
}
