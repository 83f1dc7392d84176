package plugin

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/bumped/pkg/fs"
	"github.com/lerenn/bumped/pkg/git"
	"github.com/lerenn/bumped/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=installer.go -destination=mocks/installer.gen.go -package=mocks

// Installer fetches a missing plugin.
type Installer interface {
	// Install fetches the plugin id into the global plugin directory.
	Install(ctx context.Context, id string) error
}

type realInstaller struct {
	git    git.Git
	fs     fs.FS
	dir    string
	logger logger.Logger
}

// NewInstaller creates an Installer cloning repositories into dir.
func NewInstaller(g git.Git, fs fs.FS, dir string, l logger.Logger) Installer {
	return &realInstaller{
		git:    g,
		fs:     fs,
		dir:    dir,
		logger: l,
	}
}

// IsRepositoryPath reports whether id looks like host/owner/name.
func IsRepositoryPath(id string) bool {
	parts := strings.Split(id, "/")
	if len(parts) < 3 || !strings.Contains(parts[0], ".") {
		return false
	}
	for _, part := range parts {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}

func (i *realInstaller) Install(ctx context.Context, id string) error {
	if !IsRepositoryPath(id) {
		return fmt.Errorf("%w: %s", ErrNotInstallable, id)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(i.dir, filepath.FromSlash(id))
	exists, err := i.fs.Exists(target)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}
	if exists {
		i.logger.Logf("Plugin %s already present at %s", id, target)
		return nil
	}

	if err := i.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}

	i.logger.Logf("Cloning plugin %s into %s", id, target)
	if err := i.git.Clone(git.CloneParams{
		RepoURL:    "https://" + id,
		TargetPath: target,
	}); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInstallFailed, id, err)
	}

	return nil
}
