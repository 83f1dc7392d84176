package cli

import (
	"context"

	"github.com/lerenn/bumped/pkg/bumped"
	"github.com/lerenn/bumped/pkg/dependencies"
	"github.com/lerenn/bumped/pkg/forge"
	"github.com/lerenn/bumped/pkg/fs"
	"github.com/lerenn/bumped/pkg/git"
	"github.com/lerenn/bumped/pkg/manifest"
	"github.com/lerenn/bumped/pkg/plugin"
	"github.com/lerenn/bumped/pkg/plugin/builtin"
	"github.com/lerenn/bumped/pkg/reporter"
	"github.com/lerenn/bumped/pkg/resolver"
)

// NewDependencies wires the production collaborators for workDir.
func NewDependencies(workDir string, r reporter.Reporter) (*dependencies.Dependencies, error) {
	filesystem := fs.NewFS()
	g := git.NewGit()
	log := NewLogger()
	m := manifest.New(filesystem)

	github, err := forge.NewManager(log, g).GetForge(forge.GitHubName)
	if err != nil {
		return nil, err
	}

	registry, err := builtin.NewRegistry(builtin.Dependencies{FS: filesystem, Git: g, Forge: github})
	if err != nil {
		return nil, err
	}

	// Without a home directory, plugins are installed in the project.
	localDir := plugin.LocalDir(workDir)
	dirs := []string{localDir}
	installDir := localDir
	if globalDir, err := plugin.GlobalDir(filesystem); err == nil {
		dirs = append(dirs, globalDir)
		installDir = globalDir
	} else {
		log.Logf("No global plugin directory: %v", err)
	}

	return dependencies.New().
		WithFS(filesystem).
		WithGit(g).
		WithConfig(NewConfigManager(filesystem, workDir)).
		WithManifest(m).
		WithResolver(resolver.New(m)).
		WithForge(github).
		WithLogger(log).
		WithReporter(r).
		WithPlugins(registry).
		WithLocator(plugin.NewLocator(filesystem, registry, dirs...)).
		WithInstaller(plugin.NewInstaller(g, filesystem, installDir, log)).
		WithLoader(plugin.NewLoader(registry)), nil
}

// NewBumped creates a Bumped instance for the project directory.
func NewBumped(r reporter.Reporter) (bumped.Bumped, error) {
	workDir, err := ResolveWorkDir()
	if err != nil {
		return nil, err
	}

	deps, err := NewDependencies(workDir, r)
	if err != nil {
		return nil, err
	}

	return bumped.NewBumped(bumped.NewBumpedParams{
		Dependencies: deps,
		WorkDir:      workDir,
	})
}

// LoadBumped creates a Bumped instance and loads the project configuration.
func LoadBumped(ctx context.Context, r reporter.Reporter) (bumped.Bumped, error) {
	b, err := NewBumped(r)
	if err != nil {
		return nil, err
	}
	if err := b.Load(ctx); err != nil {
		return nil, err
	}
	return b, nil
}
