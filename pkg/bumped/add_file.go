package bumped

import (
	"fmt"

	"github.com/lerenn/bumped/pkg/registry"
)

// AddFile tracks an existing file and saves the configuration.
func (b *realBumped) AddFile(file string) error {
	if b.files.Has(file) {
		return b.fail(fmt.Errorf("%w: %s", registry.ErrFileAlreadyTracked, file))
	}

	exists, err := b.deps.FS.Exists(b.path(file))
	if err != nil {
		return b.fail(fmt.Errorf("failed to check %s: %w", file, err))
	}
	if !exists {
		return b.fail(fmt.Errorf("%w: %s", ErrFileNotFound, file))
	}

	if err := b.track(file); err != nil {
		return b.fail(err)
	}
	if err := b.save(); err != nil {
		return b.fail(err)
	}
	return nil
}
