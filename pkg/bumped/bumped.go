// Package bumped provides the use cases behind the bumped command line:
// configuration scaffolding, tracked files management and releases.
package bumped

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lerenn/bumped/pkg/config"
	"github.com/lerenn/bumped/pkg/dependencies"
	"github.com/lerenn/bumped/pkg/hooks"
	"github.com/lerenn/bumped/pkg/registry"
	"github.com/lerenn/bumped/pkg/release"
)

// Bumped interface provides the bumped operations on a working directory.
type Bumped interface {
	// Load reads the configuration, when present, and synchronizes the current version.
	Load(ctx context.Context) error
	// Init replaces the configuration with a scaffold tracking the detected manifests.
	Init(ctx context.Context) error
	// AddFile tracks an existing file.
	AddFile(file string) error
	// RemoveFile stops tracking a file.
	RemoveFile(file string) error
	// SetProperty writes a property into every tracked file.
	SetProperty(property, value string) error
	// Version prints and returns the current version.
	Version() (string, error)
	// Release moves the project to the version described by token.
	Release(ctx context.Context, token, prefix string) (string, error)
	// Files returns the tracked files, as declared in the configuration.
	Files() []string
}

// NewBumpedParams contains parameters for creating a new Bumped instance.
type NewBumpedParams struct {
	Dependencies *dependencies.Dependencies
	// WorkDir is the project root; relative tracked files are resolved against it.
	WorkDir string
}

type realBumped struct {
	deps         *dependencies.Dependencies
	workDir      string
	cfg          config.Config
	files        *registry.Registry
	orchestrator release.Orchestrator
}

// NewBumped creates a new Bumped instance.
func NewBumped(params NewBumpedParams) (Bumped, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	workDir := params.WorkDir
	if workDir == "" {
		workDir = "."
	}

	b := &realBumped{
		deps:    deps,
		workDir: workDir,
		files:   registry.New(nil),
	}

	pipeline := hooks.NewPipeline(hooks.PipelineParams{
		Locator:   deps.Locator,
		Installer: deps.Installer,
		Loader:    deps.Loader,
		Observer: hooks.Observers(
			hooks.NewReporterObserver(deps.Reporter),
			hooks.NewLoggingObserver(deps.Logger),
		),
		Reporter: deps.Reporter,
		Logger:   deps.Logger,
	})

	b.orchestrator = release.NewOrchestrator(release.OrchestratorParams{
		Source:   source{b: b},
		Resolver: deps.Resolver,
		Manifest: deps.Manifest,
		Pipeline: pipeline,
		Reporter: deps.Reporter,
		Logger:   deps.Logger,
		WorkDir:  workDir,
	})

	return b, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (b *realBumped) VerbosePrint(msg string, args ...interface{}) {
	b.deps.Logger.Logf(msg, args...)
}

func (b *realBumped) Files() []string {
	return b.files.Files()
}

// path resolves a tracked file against the working directory.
func (b *realBumped) path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(b.workDir, file)
}

// track adds file to the registry and reports it.
func (b *realBumped) track(file string) error {
	if err := b.files.Add(file); err != nil {
		return err
	}
	b.deps.Reporter.Success(fmt.Sprintf("%s has been added", file))
	return nil
}

// save persists the tracked files and the plugins.
func (b *realBumped) save() error {
	b.cfg.Files = b.files.Files()
	if err := b.deps.Config.SaveConfig(b.cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	b.VerbosePrint("Configuration saved to %s", b.deps.Config.GetConfigPath())
	return nil
}

// fail reports err and marks it as reported.
func (b *realBumped) fail(err error) error {
	b.deps.Reporter.Error(release.Messages(err)...)
	return &ReportedError{Err: err}
}
