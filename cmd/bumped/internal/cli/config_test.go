//go:build unit

package cli

import (
	"path/filepath"
	"testing"

	"github.com/lerenn/bumped/pkg/config"
	"github.com/lerenn/bumped/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigManager(t *testing.T) {
	dir := t.TempDir()
	filesystem := fs.NewFS()

	tests := []struct {
		name       string
		configPath string
		want       string
	}{
		{name: "default", configPath: "", want: filepath.Join(dir, config.DefaultConfigFileName)},
		{name: "relative", configPath: "conf/bumped.yml", want: filepath.Join(dir, "conf", "bumped.yml")},
		{name: "absolute", configPath: "/etc/bumped.yml", want: "/etc/bumped.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ConfigPath = tt.configPath
			t.Cleanup(func() { ConfigPath = "" })

			assert.Equal(t, tt.want, NewConfigManager(filesystem, dir).GetConfigPath())
		})
	}
}

func TestResolveWorkDir(t *testing.T) {
	dir := t.TempDir()
	WorkDir = dir
	t.Cleanup(func() { WorkDir = "" })

	got, err := ResolveWorkDir()

	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestNewDependencies(t *testing.T) {
	deps, err := NewDependencies(t.TempDir(), NewReporter())

	require.NoError(t, err)
	assert.NoError(t, deps.Validate())
	assert.NotNil(t, deps.Forge)
	assert.True(t, deps.Plugins.Has("git-clean"))
}
