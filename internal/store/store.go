// Package store persists engine snapshots in a key-value backend.
package store

import (
	"context"
	"fmt"

	"github.com/nhle/wellup/internal/model"
)

// KV is a string-keyed blob store. A missing key is reported with
// found=false and a nil error.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open returns the backend selected by cfg. For postgres cfg.DSN must
// already be resolved.
func Open(ctx context.Context, cfg model.StorageConfig) (KV, error) {
	switch cfg.Driver {
	case model.DriverMemory:
		return NewMemoryStore(), nil
	case model.DriverSQLite, "":
		s, err := NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case model.DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("opening postgres store: no DSN configured")
		}
		s, err := OpenPgStore(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
