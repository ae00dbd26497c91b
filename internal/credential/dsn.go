package credential

import (
	"fmt"
	"os"
	"strings"
)

// DSNEnv overrides the keyring when set.
const DSNEnv = "WELLUP_POSTGRES_DSN"

// Lookup reads a secret by key. Get satisfies it.
type Lookup func(key string) (string, error)

// ResolveDSN returns the first non-empty of configured, the DSNEnv variable
// and the keyring entry PostgresDSNKey.
func ResolveDSN(configured string, lookup Lookup) (string, error) {
	if s := strings.TrimSpace(configured); s != "" {
		return s, nil
	}
	if s := strings.TrimSpace(os.Getenv(DSNEnv)); s != "" {
		return s, nil
	}
	if lookup == nil {
		lookup = Get
	}
	dsn, err := lookup(PostgresDSNKey)
	if err != nil {
		return "", fmt.Errorf("resolving postgres DSN: %w", err)
	}
	if strings.TrimSpace(dsn) == "" {
		return "", fmt.Errorf("resolving postgres DSN: %w", ErrNotFound)
	}
	return strings.TrimSpace(dsn), nil
}
