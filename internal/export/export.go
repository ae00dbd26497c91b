// Package export writes and reads every stored snapshot as one document in
// JSON, YAML or TOML.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/store"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", &model.ValidationError{Field: "format", Reason: fmt.Sprintf("unknown format %q", s)}
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Bundle is every snapshot plus export metadata.
type Bundle struct {
	Version    int                     `json:"version"`
	ExportedAt time.Time               `json:"exportedAt"`
	Theme      model.Theme             `json:"theme"`
	Data       model.DataSnapshot      `json:"data"`
	Analytics  model.AnalyticsSnapshot `json:"analytics"`
	Focus      model.FocusSnapshot     `json:"focus"`
}

// BundleVersion is written into every export.
const BundleVersion = 1

// Collect loads every snapshot from g.
func Collect(ctx context.Context, g *store.Gateway, now time.Time) (Bundle, error) {
	b := Bundle{Version: BundleVersion, ExportedAt: now.UTC()}
	var err error
	if b.Data, err = g.LoadData(ctx); err != nil {
		return Bundle{}, err
	}
	if b.Analytics, err = g.LoadAnalytics(ctx); err != nil {
		return Bundle{}, err
	}
	if b.Focus, err = g.LoadFocus(ctx); err != nil {
		return Bundle{}, err
	}
	if b.Theme, err = g.LoadTheme(ctx); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

// Restore writes every snapshot of b to g.
func Restore(ctx context.Context, g *store.Gateway, b Bundle) error {
	if err := g.SaveData(ctx, b.Data); err != nil {
		return err
	}
	if err := g.SaveAnalytics(ctx, b.Analytics); err != nil {
		return err
	}
	if err := g.SaveFocus(ctx, b.Focus); err != nil {
		return err
	}
	if b.Theme == "" {
		b.Theme = model.ThemeDark
	}
	return g.SaveTheme(ctx, b.Theme)
}

// Write encodes b to w. Every format uses the same camelCase keys as the
// stored snapshots.
func Write(w io.Writer, f Format, b Bundle) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}
	if f == FormatJSON {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return fmt.Errorf("indenting bundle: %w", err)
		}
		buf.WriteByte('\n')
		_, err := buf.WriteTo(w)
		return err
	}

	tree, err := genericTree(raw)
	if err != nil {
		return err
	}
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(tree); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

// Read decodes a bundle written by Write.
func Read(r io.Reader, f Format) (Bundle, error) {
	var b Bundle
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&b); err != nil {
			return Bundle{}, fmt.Errorf("decoding json: %w", err)
		}
		return b, nil
	case FormatYAML, FormatTOML:
	default:
		return Bundle{}, fmt.Errorf("unsupported format %q", f)
	}

	var tree map[string]any
	if f == FormatYAML {
		if err := yaml.NewDecoder(r).Decode(&tree); err != nil {
			return Bundle{}, fmt.Errorf("decoding yaml: %w", err)
		}
	} else {
		if err := toml.NewDecoder(r).Decode(&tree); err != nil {
			return Bundle{}, fmt.Errorf("decoding toml: %w", err)
		}
	}
	raw, err := json.Marshal(tree)
	if err != nil {
		return Bundle{}, fmt.Errorf("re-encoding bundle: %w", err)
	}
	if err := json.Unmarshal(raw, &b); err != nil {
		return Bundle{}, fmt.Errorf("decoding bundle: %w", err)
	}
	return b, nil
}

// genericTree turns JSON into maps and slices with nulls dropped and
// integral numbers kept as integers, which TOML needs.
func genericTree(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree map[string]any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("decoding bundle tree: %w", err)
	}
	return normalize(tree).(map[string]any), nil
}

func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, child := range x {
			if child == nil {
				delete(x, k)
				continue
			}
			x[k] = normalize(child)
		}
		return x
	case []any:
		for i := range x {
			x[i] = normalize(x[i])
		}
		return x
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		f, _ := x.Float64()
		return f
	default:
		return v
	}
}
