//go:build integration

package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGit_IsClean(t *testing.T) {
	git := NewGit()
	dir := setupTestRepo(t)

	clean, err := git.IsClean(dir)
	require.NoError(t, err)
	assert.True(t, clean)

	writeFile(t, dir, "package.json", `{"version": "1.1.0"}`)

	clean, err = git.IsClean(dir)
	require.NoError(t, err)
	assert.False(t, clean)

	status, err := git.Status(dir)
	require.NoError(t, err)
	assert.Contains(t, status, "package.json")
}

func TestGit_IsClean_NotARepository(t *testing.T) {
	git := NewGit()

	_, err := git.IsClean(t.TempDir())

	assert.ErrorIs(t, err, ErrCommandFailed)
}
