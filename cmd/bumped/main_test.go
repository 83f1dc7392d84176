//go:build unit

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/bumped/pkg/bumped"
	"github.com/lerenn/bumped/pkg/config"
	"github.com/lerenn/bumped/pkg/release"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func readVersion(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return gjson.GetBytes(data, "version").String()
}

func TestCLI_InitAddSet(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, execute(t, "--cwd", dir, "-q", "init"))
	assert.FileExists(t, filepath.Join(dir, config.DefaultConfigFileName))
	assert.Equal(t, "0.0.0", readVersion(t, filepath.Join(dir, "package.json")))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "composer.json"), []byte(`{"name": "vendor/app"}`), 0644))
	require.NoError(t, execute(t, "--cwd", dir, "-q", "add", "composer.json"))
	require.NoError(t, execute(t, "--cwd", dir, "-q", "set", "description", "Keeps", "versions", "in", "sync"))

	data, err := os.ReadFile(filepath.Join(dir, "composer.json"))
	require.NoError(t, err)
	assert.Equal(t, "Keeps versions in sync", gjson.GetBytes(data, "description").String())

	require.NoError(t, execute(t, "--cwd", dir, "-q"))
}

func TestCLI_Release(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"version": "1.2.3"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yml"), []byte("files:\n  - package.json\n"), 0644))

	require.NoError(t, execute(t, "--cwd", dir, "-q", "-c", "custom.yml", "release", "prerelease", "--prefix", "beta"))
	assert.Equal(t, "1.2.4-beta.0", readVersion(t, filepath.Join(dir, "package.json")))

	require.NoError(t, execute(t, "--cwd", dir, "-q", "-c", "custom.yml", "release", "feature"))
	assert.Equal(t, "1.3.0", readVersion(t, filepath.Join(dir, "package.json")))
}

func TestCLI_Release_WithoutVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"version": "1.0.0"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultConfigFileName), []byte("files:\n  - package.json\n"), 0644))

	err := execute(t, "--cwd", dir, "release")

	assert.ErrorIs(t, err, release.ErrInvalidVersion)
	var reported *bumped.ReportedError
	assert.ErrorAs(t, err, &reported)
	assert.Equal(t, "1.0.0", readVersion(t, filepath.Join(dir, "package.json")))
}

func TestCLI_AddMissingFile(t *testing.T) {
	dir := t.TempDir()

	err := execute(t, "--cwd", dir, "add", "missing.json")

	assert.ErrorIs(t, err, bumped.ErrFileNotFound)
}

func TestCLI_ArgumentErrors(t *testing.T) {
	dir := t.TempDir()

	assert.Error(t, execute(t, "--cwd", dir, "add"))
	assert.Error(t, execute(t, "--cwd", dir, "remove", "a.json", "b.json"))
	assert.Error(t, execute(t, "--cwd", dir, "release", "patch", "minor"))
}
