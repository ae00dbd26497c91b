package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nhle/wellup/internal/model"
)

// Snapshot keys. They match the keys used by earlier versions of the app so
// existing data can be imported as is.
const (
	KeyData      = "wellup-data"
	KeyAnalytics = "wellup-analytics"
	KeyFocus     = "wellup-focus"
	KeyTheme     = "theme"
)

// Gateway reads and writes typed snapshots. Absent keys load as defaults.
// Every failure is returned as a *PersistenceError.
type Gateway struct {
	kv KV
}

// NewGateway returns a gateway over kv.
func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv}
}

// Close closes the backend.
func (g *Gateway) Close() error {
	return g.kv.Close()
}

// LoadData returns the shared task snapshot. On error the default snapshot
// is returned along with the error.
func (g *Gateway) LoadData(ctx context.Context) (model.DataSnapshot, error) {
	snap := model.DefaultDataSnapshot()
	if err := g.loadJSON(ctx, KeyData, &snap); err != nil {
		return model.DefaultDataSnapshot(), err
	}
	if snap.Tasks == nil {
		snap.Tasks = []model.Task{}
	}
	if snap.ImportantDates == nil {
		snap.ImportantDates = []model.ImportantDate{}
	}
	return snap, nil
}

// SaveData writes the shared task snapshot.
func (g *Gateway) SaveData(ctx context.Context, snap model.DataSnapshot) error {
	return g.saveJSON(ctx, KeyData, snap)
}

// LoadAnalytics returns the study log snapshot.
func (g *Gateway) LoadAnalytics(ctx context.Context) (model.AnalyticsSnapshot, error) {
	snap := model.AnalyticsSnapshot{StudyLogs: []model.StudyLogEntry{}}
	if err := g.loadJSON(ctx, KeyAnalytics, &snap); err != nil {
		return model.AnalyticsSnapshot{StudyLogs: []model.StudyLogEntry{}}, err
	}
	if snap.StudyLogs == nil {
		snap.StudyLogs = []model.StudyLogEntry{}
	}
	return snap, nil
}

// SaveAnalytics writes the study log snapshot.
func (g *Gateway) SaveAnalytics(ctx context.Context, snap model.AnalyticsSnapshot) error {
	return g.saveJSON(ctx, KeyAnalytics, snap)
}

// LoadFocus returns the focus stats snapshot.
func (g *Gateway) LoadFocus(ctx context.Context) (model.FocusSnapshot, error) {
	var snap model.FocusSnapshot
	if err := g.loadJSON(ctx, KeyFocus, &snap); err != nil {
		return model.FocusSnapshot{}, err
	}
	return snap, nil
}

// SaveFocus writes the focus stats snapshot.
func (g *Gateway) SaveFocus(ctx context.Context, snap model.FocusSnapshot) error {
	return g.saveJSON(ctx, KeyFocus, snap)
}

// LoadTheme returns the stored theme. The value is stored as a bare word;
// anything other than "light" reads as dark.
func (g *Gateway) LoadTheme(ctx context.Context) (model.Theme, error) {
	raw, found, err := g.kv.Get(ctx, KeyTheme)
	if err != nil {
		return model.ThemeDark, &PersistenceError{Op: "load", Key: KeyTheme, Err: err}
	}
	if !found {
		return model.ThemeDark, nil
	}
	if model.Theme(strings.Trim(strings.TrimSpace(string(raw)), `"`)) == model.ThemeLight {
		return model.ThemeLight, nil
	}
	return model.ThemeDark, nil
}

// SaveTheme writes the theme preference.
func (g *Gateway) SaveTheme(ctx context.Context, t model.Theme) error {
	if err := g.kv.Put(ctx, KeyTheme, []byte(t)); err != nil {
		return &PersistenceError{Op: "save", Key: KeyTheme, Err: err}
	}
	return nil
}

func (g *Gateway) loadJSON(ctx context.Context, key string, v any) error {
	raw, found, err := g.kv.Get(ctx, key)
	if err != nil {
		return &PersistenceError{Op: "load", Key: key, Err: err}
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &PersistenceError{Op: "load", Key: key, Err: fmt.Errorf("decoding snapshot: %w", err)}
	}
	return nil
}

func (g *Gateway) saveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: fmt.Errorf("encoding snapshot: %w", err)}
	}
	if err := g.kv.Put(ctx, key, raw); err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	return nil
}
