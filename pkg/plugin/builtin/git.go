package builtin

import (
	"context"

	"github.com/lerenn/bumped/pkg/git"
	"github.com/lerenn/bumped/pkg/plugin"
)

// Defaults of the git plugin options.
const (
	DefaultCommitMessage = "Release v" + plugin.NewVersionPlaceholder
	DefaultTagPrefix     = "v"
)

// Git commits the tracked files, tags the release and optionally pushes both.
//
// Options: message, tag, tagPrefix, push, remote.
type Git struct {
	git git.Git
}

// NewGit creates a Git plugin.
func NewGit(g git.Git) *Git {
	return &Git{git: g}
}

type gitOptions struct {
	message   string
	tag       bool
	tagPrefix string
	push      bool
	remote    string
}

func readGitOptions(params plugin.Params) (gitOptions, error) {
	var opts gitOptions
	var err error
	if opts.message, err = params.String("message", DefaultCommitMessage); err != nil {
		return opts, err
	}
	if opts.tag, err = params.Bool("tag", true); err != nil {
		return opts, err
	}
	if opts.tagPrefix, err = params.String("tagPrefix", DefaultTagPrefix); err != nil {
		return opts, err
	}
	if opts.push, err = params.Bool("push", false); err != nil {
		return opts, err
	}
	if opts.remote, err = params.String("remote", git.DefaultRemote); err != nil {
		return opts, err
	}
	return opts, nil
}

// Execute stages, commits, tags and pushes.
func (g *Git) Execute(ctx context.Context, params plugin.Params) error {
	opts, err := readGitOptions(params)
	if err != nil {
		return err
	}
	dir := workDir(params)
	message := params.Release.Expand(opts.message)

	if len(params.Release.Files) > 0 {
		if err := g.git.Add(dir, params.Release.Files...); err != nil {
			return err
		}
	}
	if err := g.git.Commit(dir, message); err != nil {
		return err
	}

	if opts.tag {
		if err := g.git.CreateTag(dir, opts.tagPrefix+params.Release.Version, message); err != nil {
			return err
		}
	}

	if !opts.push {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.git.Push(dir, opts.remote); err != nil {
		return err
	}
	if opts.tag {
		return g.git.PushTags(dir, opts.remote)
	}
	return nil
}
