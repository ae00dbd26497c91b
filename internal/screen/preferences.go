package screen

import (
	"context"

	"github.com/nhle/wellup/internal/model"
)

// Preferences holds the shared light/dark theme.
type Preferences struct {
	base
	theme model.Theme
}

// NewPreferences returns the preferences controller. Call Open before use.
func NewPreferences(d Deps) *Preferences {
	s := &Preferences{theme: model.ThemeDark}
	s.setup(d, "preferences")
	return s
}

// Open loads the stored theme.
func (s *Preferences) Open(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.Gateway.LoadTheme(ctx)
	s.loadFailed(err)
	s.theme = t
}

// Theme returns the current theme.
func (s *Preferences) Theme() model.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme flips between light and dark and saves.
func (s *Preferences) ToggleTheme(ctx context.Context) model.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = s.theme.Toggle()
	s.saved(s.Gateway.SaveTheme(ctx, s.theme))
	return s.theme
}
