//go:build integration

package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGit_PushAndPushTags(t *testing.T) {
	git := NewGit()
	dir := setupTestRepo(t)
	bare := setupBareRemote(t, dir)

	require.NoError(t, git.CreateTag(dir, "v1.0.0", ""))
	require.NoError(t, git.Push(dir, "local"))
	require.NoError(t, git.PushTags(dir, "local"))

	tags := gitCmd(t, bare, "tag", "--list")
	assert.Contains(t, tags, "v1.0.0")
}

func TestGit_GetRemoteURL(t *testing.T) {
	git := NewGit()
	dir := setupTestRepo(t)

	url, err := git.GetRemoteURL(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/octocat/Hello-World.git", url)

	_, err = git.GetRemoteURL(dir, "upstream")
	assert.ErrorIs(t, err, ErrCommandFailed)
}
