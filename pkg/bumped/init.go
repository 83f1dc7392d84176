package bumped

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/bumped/pkg/manifest"
	"github.com/lerenn/bumped/pkg/registry"
	"github.com/lerenn/bumped/pkg/release"
)

// DetectedFiles are the manifests tracked by Init when present, in this order.
var DetectedFiles = []string{"package.json", "bower.json", "manifest.json", "composer.json"}

// FallbackFile is created by Init when no manifest is detected.
const FallbackFile = "package.json"

// Init replaces the configuration with a scaffold tracking the detected manifests.
func (b *realBumped) Init(ctx context.Context) error {
	b.VerbosePrint("Initializing configuration in %s", b.workDir)

	if err := b.deps.Config.Remove(); err != nil {
		return b.fail(fmt.Errorf("failed to remove previous configuration: %w", err))
	}
	b.cfg = b.deps.Config.DefaultConfig()
	b.files = registry.New(nil)

	if err := b.detectFiles(); err != nil {
		return b.fail(err)
	}
	if b.files.Len() == 0 {
		if err := b.createFallback(); err != nil {
			return b.fail(err)
		}
	}

	if err := b.save(); err != nil {
		return b.fail(err)
	}
	if _, err := b.orchestrator.Sync(ctx); err != nil {
		return b.fail(err)
	}

	// A missing version is reported but does not fail the scaffolding.
	if _, err := b.Version(); err != nil && !errors.Is(err, ErrNoVersion) {
		return err
	}
	b.deps.Reporter.Success("Config file created")
	return nil
}

// detectFiles tracks the well known manifests present in the working directory.
func (b *realBumped) detectFiles() error {
	for _, file := range DetectedFiles {
		exists, err := b.deps.FS.Exists(b.path(file))
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", file, err)
		}
		if !exists {
			continue
		}
		if err := b.track(file); err != nil {
			return err
		}
	}
	return nil
}

// createFallback writes a minimal manifest declaring the initial version and tracks it.
func (b *realBumped) createFallback() error {
	path := b.path(FallbackFile)
	b.VerbosePrint("No manifest detected, creating %s", path)

	if err := b.deps.FS.WriteFileAtomic(path, []byte("{}\n"), 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", FallbackFile, err)
	}
	if err := b.deps.Manifest.WriteField(path, manifest.VersionProperty, release.InitialVersion, true); err != nil {
		return err
	}
	return b.track(FallbackFile)
}
