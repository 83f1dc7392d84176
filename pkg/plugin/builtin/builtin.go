// Package builtin provides the plugins shipped with bumped.
package builtin

import (
	"github.com/lerenn/bumped/pkg/forge"
	"github.com/lerenn/bumped/pkg/fs"
	"github.com/lerenn/bumped/pkg/git"
	"github.com/lerenn/bumped/pkg/plugin"
)

// Names of the built-in plugins.
const (
	TerminalName      = "terminal"
	GitName           = "git"
	GitCleanName      = "git-clean"
	GitHubReleaseName = "github-release"
)

// Dependencies are the collaborators built-in plugins run with.
type Dependencies struct {
	FS    fs.FS
	Git   git.Git
	Forge forge.Forge
}

// Register adds every built-in plugin to registry.
func Register(registry *plugin.Registry, deps Dependencies) error {
	builtins := map[string]plugin.Plugin{
		TerminalName:      NewTerminal(deps.FS),
		GitName:           NewGit(deps.Git),
		GitCleanName:      NewGitClean(deps.Git),
		GitHubReleaseName: NewGitHubRelease(deps.Forge),
	}
	for _, name := range []string{TerminalName, GitName, GitCleanName, GitHubReleaseName} {
		if err := registry.Register(name, builtins[name]); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding every built-in plugin.
func NewRegistry(deps Dependencies) (*plugin.Registry, error) {
	registry := plugin.NewRegistry()
	if err := Register(registry, deps); err != nil {
		return nil, err
	}
	return registry, nil
}

func workDir(params plugin.Params) string {
	if params.Release.WorkDir == "" {
		return "."
	}
	return params.Release.WorkDir
}
