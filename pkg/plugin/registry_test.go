//go:build unit

package plugin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop() Plugin {
	return Func(func(context.Context, Params) error { return nil })
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("terminal", noop()))
	require.NoError(t, r.Register("git", noop()))

	assert.True(t, r.Has("git"))
	assert.False(t, r.Has("npm"))
	assert.Equal(t, []string{"git", "terminal"}, r.Names())

	p, err := r.Get("terminal")
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = r.Get("npm")
	assert.ErrorIs(t, err, ErrUnknownBuiltin)
}

func TestRegistry_RegisterErrors(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("git", noop()))

	assert.ErrorIs(t, r.Register("git", noop()), ErrAlreadyRegistered)
	assert.ErrorIs(t, r.Register("", noop()), ErrNameEmpty)
	assert.Error(t, r.Register("nil", nil))
}
