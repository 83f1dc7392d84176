//go:build unit

package plugin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelease_Expand(t *testing.T) {
	r := Release{Version: "1.3.0", PreviousVersion: "1.2.0"}

	assert.Equal(t, "Release v1.3.0", r.Expand("Release v$newVersion"))
	assert.Equal(t, "1.2.0 -> 1.3.0", r.Expand("$oldVersion -> $newVersion"))
	assert.Equal(t, "no placeholder", r.Expand("no placeholder"))
}

func TestParams_Options(t *testing.T) {
	p := Params{Options: map[string]interface{}{
		"message": "Release",
		"tag":     false,
		"remote":  nil,
		"count":   3,
	}}

	s, err := p.String("message", "default")
	require.NoError(t, err)
	assert.Equal(t, "Release", s)

	s, err = p.String("remote", "origin")
	require.NoError(t, err)
	assert.Equal(t, "origin", s)

	s, err = p.String("missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", s)

	b, err := p.Bool("tag", true)
	require.NoError(t, err)
	assert.False(t, b)

	b, err = p.Bool("push", true)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = p.String("count", "")
	assert.ErrorIs(t, err, ErrOptionType)

	_, err = p.Bool("message", false)
	assert.ErrorIs(t, err, ErrOptionType)
}

func TestFunc_Execute(t *testing.T) {
	boom := errors.New("boom")
	var got Params

	p := Func(func(_ context.Context, params Params) error {
		got = params
		return boom
	})

	err := p.Execute(context.Background(), Params{Title: "Publishing"})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Publishing", got.Title)
}
