package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/bumped/pkg/git"
	"github.com/lerenn/bumped/pkg/plugin"
)

// GitClean fails when the working tree has pending changes.
type GitClean struct {
	git git.Git
}

// NewGitClean creates a GitClean plugin.
func NewGitClean(g git.Git) *GitClean {
	return &GitClean{git: g}
}

// Execute checks the working tree.
func (g *GitClean) Execute(_ context.Context, params plugin.Params) error {
	status, err := g.git.Status(workDir(params))
	if err != nil {
		return err
	}
	if status = strings.TrimSpace(status); status != "" {
		return fmt.Errorf("%w:\n%s", ErrDirtyWorkingTree, status)
	}
	return nil
}
