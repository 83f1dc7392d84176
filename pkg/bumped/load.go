package bumped

import (
	"context"

	"github.com/lerenn/bumped/pkg/registry"
)

// Load reads the configuration, when present, and synchronizes the current version.
func (b *realBumped) Load(ctx context.Context) error {
	exists, err := b.deps.Config.Exists()
	if err != nil {
		return b.fail(err)
	}
	if !exists {
		b.VerbosePrint("No configuration found at %s", b.deps.Config.GetConfigPath())
		return nil
	}

	cfg, err := b.deps.Config.GetConfig()
	if err != nil {
		return b.fail(err)
	}
	b.cfg = cfg
	b.files = registry.New(cfg.Files)

	version, err := b.orchestrator.Sync(ctx)
	if err != nil {
		return b.fail(err)
	}
	b.VerbosePrint("Loaded %d tracked files, current version %q", b.files.Len(), version)
	return nil
}
