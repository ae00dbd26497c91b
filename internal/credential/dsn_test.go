package credential

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDSN_Precedence(t *testing.T) {
	lookup := func(key string) (string, error) {
		assert.Equal(t, PostgresDSNKey, key)
		return "postgres://keyring", nil
	}

	t.Setenv(DSNEnv, "postgres://env")
	got, err := ResolveDSN("postgres://config", lookup)
	require.NoError(t, err)
	assert.Equal(t, "postgres://config", got)

	got, err = ResolveDSN("", lookup)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env", got)

	t.Setenv(DSNEnv, "")
	got, err = ResolveDSN("", lookup)
	require.NoError(t, err)
	assert.Equal(t, "postgres://keyring", got)
}

func TestResolveDSN_Missing(t *testing.T) {
	t.Setenv(DSNEnv, "")

	_, err := ResolveDSN("", func(string) (string, error) { return "", ErrNotFound })
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ResolveDSN("", func(string) (string, error) { return " ", nil })
	assert.ErrorIs(t, err, ErrNotFound)

	boom := errors.New("locked")
	_, err = ResolveDSN("", func(string) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
}
