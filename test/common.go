//go:build e2e

package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/bumped/pkg/bumped"
	"github.com/lerenn/bumped/pkg/config"
	"github.com/lerenn/bumped/pkg/dependencies"
	"github.com/lerenn/bumped/pkg/forge"
	"github.com/lerenn/bumped/pkg/fs"
	"github.com/lerenn/bumped/pkg/git"
	"github.com/lerenn/bumped/pkg/logger"
	"github.com/lerenn/bumped/pkg/plugin"
	"github.com/lerenn/bumped/pkg/plugin/builtin"
	"github.com/lerenn/bumped/pkg/reporter"
	"github.com/stretchr/testify/require"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir     string
	RepoPath    string
	RemotePath  string
	PluginsPath string
}

// setupTestEnvironment creates a temporary project and a bare remote
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()

	tempDir := t.TempDir()
	setup := &TestSetup{
		TempDir:     tempDir,
		RepoPath:    filepath.Join(tempDir, "repo"),
		RemotePath:  filepath.Join(tempDir, "remote.git"),
		PluginsPath: filepath.Join(tempDir, "home-plugins"),
	}
	require.NoError(t, os.MkdirAll(setup.RepoPath, 0755))

	// Commits made by the git plugin need an identity
	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	return setup
}

// createTestGitRepo initializes the project repository with its bare remote
func createTestGitRepo(t *testing.T, setup *TestSetup) {
	t.Helper()

	runGit(t, setup.TempDir, "init", "--bare", setup.RemotePath)
	runGit(t, setup.RepoPath, "init")
	runGit(t, setup.RepoPath, "symbolic-ref", "HEAD", "refs/heads/main")
	runGit(t, setup.RepoPath, "remote", "add", "origin", setup.RemotePath)
}

// commitAndPush commits everything and pushes main upstream
func commitAndPush(t *testing.T, setup *TestSetup, message string) {
	t.Helper()

	runGit(t, setup.RepoPath, "add", "-A")
	runGit(t, setup.RepoPath, "commit", "-m", message)
	runGit(t, setup.RepoPath, "push", "-u", "origin", "main")
}

// runGit runs a git command in dir and returns its trimmed output
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), output)
	return strings.TrimSpace(string(output))
}

// writeFile writes a file relative to the project
func writeFile(t *testing.T, setup *TestSetup, name, content string) {
	t.Helper()

	path := filepath.Join(setup.RepoPath, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// createE2EDependencies wires the production collaborators for the project
func createE2EDependencies(setup *TestSetup) *dependencies.Dependencies {
	filesystem := fs.NewFS()
	g := git.NewGit()
	log := logger.NewNoopLogger()
	github := forge.NewGitHub(g)

	registry, err := builtin.NewRegistry(builtin.Dependencies{FS: filesystem, Git: g, Forge: github})
	if err != nil {
		panic(err)
	}

	return dependencies.New().
		WithFS(filesystem).
		WithGit(g).
		WithConfig(config.NewManager(filesystem, filepath.Join(setup.RepoPath, config.DefaultConfigFileName))).
		WithForge(github).
		WithLogger(log).
		WithReporter(reporter.New(reporter.Options{Quiet: true})).
		WithPlugins(registry).
		WithLocator(plugin.NewLocator(filesystem, registry, plugin.LocalDir(setup.RepoPath), setup.PluginsPath)).
		WithInstaller(plugin.NewInstaller(g, filesystem, setup.PluginsPath, log)).
		WithLoader(plugin.NewLoader(registry))
}

// newBumped creates a Bumped instance working on the project
func newBumped(t *testing.T, setup *TestSetup) bumped.Bumped {
	t.Helper()

	b, err := bumped.NewBumped(bumped.NewBumpedParams{
		Dependencies: createE2EDependencies(setup),
		WorkDir:      setup.RepoPath,
	})
	require.NoError(t, err)
	return b
}
