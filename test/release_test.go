//go:build e2e

package test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/bumped/pkg/hooks"
	"github.com/lerenn/bumped/pkg/plugin/builtin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func readVersion(t *testing.T, setup *TestSetup, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(setup.RepoPath, name))
	require.NoError(t, err)
	return gjson.GetBytes(data, "version").String()
}

// TestReleaseWithDefaultPlugins releases through the scaffolded configuration:
// clean tree check, release commit and tag, then push to the remote.
func TestReleaseWithDefaultPlugins(t *testing.T) {
	setup := setupTestEnvironment(t)
	createTestGitRepo(t, setup)
	writeFile(t, setup, "package.json", `{"name": "app", "version": "1.0.0"}`)

	ctx := context.Background()
	require.NoError(t, newBumped(t, setup).Init(ctx))
	commitAndPush(t, setup, "Initial commit")

	b := newBumped(t, setup)
	require.NoError(t, b.Load(ctx))

	version, err := b.Release(ctx, "minor", "")
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", version)
	assert.Equal(t, "1.1.0", readVersion(t, setup, "package.json"))

	assert.Equal(t, "Release v1.1.0", runGit(t, setup.RepoPath, "log", "-1", "--format=%s"))
	assert.Equal(t, "v1.1.0", runGit(t, setup.RepoPath, "tag", "--list", "v1.1.0"))
	assert.Equal(t, "v1.1.0", runGit(t, setup.RemotePath, "tag", "--list", "v1.1.0"))
	assert.Empty(t, runGit(t, setup.RepoPath, "status", "--porcelain"))
}

// TestReleaseRefusedOnDirtyTree checks that the prerelease gate leaves files untouched.
func TestReleaseRefusedOnDirtyTree(t *testing.T) {
	setup := setupTestEnvironment(t)
	createTestGitRepo(t, setup)
	writeFile(t, setup, "package.json", `{"name": "app", "version": "1.0.0"}`)

	ctx := context.Background()
	require.NoError(t, newBumped(t, setup).Init(ctx))
	commitAndPush(t, setup, "Initial commit")
	writeFile(t, setup, "notes.txt", "work in progress\n")

	b := newBumped(t, setup)
	require.NoError(t, b.Load(ctx))

	_, err := b.Release(ctx, "patch", "")

	assert.ErrorIs(t, err, builtin.ErrDirtyWorkingTree)
	var pluginErr *hooks.PluginError
	require.ErrorAs(t, err, &pluginErr)
	assert.Equal(t, "git-clean", pluginErr.Plugin)
	assert.Equal(t, "1.0.0", readVersion(t, setup, "package.json"))
	assert.Empty(t, runGit(t, setup.RepoPath, "tag", "--list"))
}

// TestReleaseWithScriptPlugin runs a project plugin interpreted from .bumped/plugins.
func TestReleaseWithScriptPlugin(t *testing.T) {
	setup := setupTestEnvironment(t)
	notes := filepath.Join(setup.TempDir, "NOTES")

	writeFile(t, setup, "package.json", `{"name": "app", "version": "1.0.0"}`)
	writeFile(t, setup, "Chart.yaml", "name: app\nversion: 0.9.0\n")
	writeFile(t, setup, ".bumped/plugins/notes.go", `package main

import "os"

func Release(version, previousVersion string, options map[string]interface{}) error {
	path, _ := options["path"].(string)
	return os.WriteFile(path, []byte(previousVersion+" -> "+version), 0644)
}
`)
	writeFile(t, setup, ".bumpedrc", `files:
  - package.json
  - Chart.yaml
plugins:
  postrelease:
    Writing release notes:
      plugin: notes
      path: `+notes+`
`)

	ctx := context.Background()
	b := newBumped(t, setup)
	require.NoError(t, b.Load(ctx))

	version, err := b.Release(ctx, "fix", "")
	require.NoError(t, err)
	assert.Equal(t, "1.0.1", version)

	data, err := os.ReadFile(notes)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0 -> 1.0.1", string(data))

	chart, err := os.ReadFile(filepath.Join(setup.RepoPath, "Chart.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(chart), "version: 1.0.1")
}

// TestReleaseWithUnknownPlugin checks that a plugin that cannot be found nor installed aborts the release.
func TestReleaseWithUnknownPlugin(t *testing.T) {
	setup := setupTestEnvironment(t)
	writeFile(t, setup, "package.json", `{"version": "2.0.0"}`)
	writeFile(t, setup, ".bumpedrc", `files:
  - package.json
plugins:
  prerelease:
    Running something unknown:
      plugin: unknown
`)

	ctx := context.Background()
	b := newBumped(t, setup)
	require.NoError(t, b.Load(ctx))

	_, err := b.Release(ctx, "major", "")

	assert.ErrorIs(t, err, hooks.ErrPluginNotFound)
	assert.Equal(t, "2.0.0", readVersion(t, setup, "package.json"))
}
