package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/bumped/pkg/forge"
	"github.com/lerenn/bumped/pkg/git"
	"github.com/lerenn/bumped/pkg/plugin"
)

// GitHubRelease publishes a GitHub release for the tag of the new version.
//
// Options: remote, tagPrefix, name, body, draft, prerelease.
type GitHubRelease struct {
	forge forge.Forge
}

// NewGitHubRelease creates a GitHubRelease plugin.
func NewGitHubRelease(f forge.Forge) *GitHubRelease {
	return &GitHubRelease{forge: f}
}

// Execute creates the release and reports its URL.
func (g *GitHubRelease) Execute(ctx context.Context, params plugin.Params) error {
	version := params.Release.Version
	if version == "" {
		return ErrNothingToRelease
	}

	remote, err := params.String("remote", git.DefaultRemote)
	if err != nil {
		return err
	}
	tagPrefix, err := params.String("tagPrefix", DefaultTagPrefix)
	if err != nil {
		return err
	}
	tag := tagPrefix + version

	name, err := params.String("name", tag)
	if err != nil {
		return err
	}
	body, err := params.String("body", "")
	if err != nil {
		return err
	}
	draft, err := params.Bool("draft", false)
	if err != nil {
		return err
	}
	prerelease, err := params.Bool("prerelease", strings.Contains(version, "-"))
	if err != nil {
		return err
	}

	url, err := g.forge.CreateRelease(ctx, forge.ReleaseParams{
		RepoPath:   workDir(params),
		Remote:     remote,
		Tag:        tag,
		Name:       params.Release.Expand(name),
		Body:       params.Release.Expand(body),
		Draft:      draft,
		Prerelease: prerelease,
	})
	if err != nil {
		return err
	}

	if params.Reporter != nil {
		params.Reporter.Success(fmt.Sprintf("Published %s", url))
	}
	return nil
}
