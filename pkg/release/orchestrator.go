// Package release computes the next version of a project and drives its release.
package release

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/lerenn/bumped/pkg/config"
	"github.com/lerenn/bumped/pkg/hooks"
	"github.com/lerenn/bumped/pkg/logger"
	"github.com/lerenn/bumped/pkg/manifest"
	"github.com/lerenn/bumped/pkg/plugin"
	"github.com/lerenn/bumped/pkg/reporter"
	"github.com/lerenn/bumped/pkg/resolver"
)

// InitialVersion is the version a project without any declared version starts from.
const InitialVersion = "0.0.0"

// Source gives the tracked files and hooks of a project.
type Source interface {
	// Files returns the tracked files, primary first.
	Files() []string
	// Hooks returns the hooks of a phase, in execution order.
	Hooks(phase string) config.Hooks
}

// Orchestrator runs releases.
type Orchestrator interface {
	// Release moves the project to the version described by token and returns it.
	// A postrelease failure returns the committed version along with the error.
	Release(ctx context.Context, token, prefix string) (string, error)
	// Sync resolves the current version from the tracked files.
	Sync(ctx context.Context) (string, error)
	// Version returns the current version, empty when none is declared.
	Version() string
	// Versions returns the current and previous versions.
	Versions() VersionState
	// State returns where the last release stands.
	State() State
}

// OrchestratorParams contains the collaborators of an Orchestrator.
type OrchestratorParams struct {
	Source   Source
	Resolver resolver.Resolver
	Manifest manifest.Manifest
	Pipeline hooks.Pipeline
	Reporter reporter.Reporter
	Logger   logger.Logger
	WorkDir  string
}

type realOrchestrator struct {
	source   Source
	resolver resolver.Resolver
	manifest manifest.Manifest
	pipeline hooks.Pipeline
	reporter reporter.Reporter
	logger   logger.Logger
	workDir  string

	mu       sync.Mutex
	state    State
	versions VersionState
}

// NewOrchestrator creates an Orchestrator instance.
func NewOrchestrator(params OrchestratorParams) Orchestrator {
	o := &realOrchestrator{
		source:   params.Source,
		resolver: params.Resolver,
		manifest: params.Manifest,
		pipeline: params.Pipeline,
		reporter: params.Reporter,
		logger:   params.Logger,
		workDir:  params.WorkDir,
	}
	if o.reporter == nil {
		o.reporter = reporter.NewDiscard()
	}
	if o.logger == nil {
		o.logger = logger.NewNoopLogger()
	}
	return o
}

func (o *realOrchestrator) Release(ctx context.Context, token, prefix string) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.state = Idle
	if strings.TrimSpace(token) == "" {
		return o.fail(fmt.Errorf("%w: no version given", ErrInvalidVersion))
	}

	files := o.source.Files()

	o.transition(ResolvingVersion)
	current, err := o.resolver.Resolve(ctx, files)
	if err != nil {
		return o.fail(err)
	}
	if current == "" {
		current = InitialVersion
	}
	o.versions.Current = current

	o.transition(RunningPre)
	if err := o.pipeline.Execute(ctx, config.PhasePrerelease, o.source.Hooks(config.PhasePrerelease), o.release(files)); err != nil {
		return o.fail(err)
	}

	o.transition(ComputingNext)
	strategy := Classify(token)
	next, err := ComputeNext(strategy, current, token, prefix)
	if err != nil {
		return o.fail(err)
	}
	o.logger.Logf("Next version with %s strategy: %s -> %s", strategy, current, next)

	o.transition(Propagating)
	o.versions.Previous = current
	o.versions.Current = next
	if err := o.propagate(files, next); err != nil {
		return o.fail(err)
	}
	o.reporter.Success(fmt.Sprintf("Releases version %s", next))

	o.transition(RunningPost)
	if err := o.pipeline.Execute(ctx, config.PhasePostrelease, o.source.Hooks(config.PhasePostrelease), o.release(files)); err != nil {
		_, err = o.fail(err)
		return next, err
	}

	o.transition(Done)
	return next, nil
}

// propagate writes version into every file. The primary file always gets the field,
// the others only when they already declare one. Earlier writes are kept on failure.
func (o *realOrchestrator) propagate(files []string, version string) error {
	for i, file := range files {
		if err := o.manifest.WriteField(file, manifest.VersionProperty, version, i == 0); err != nil {
			return fmt.Errorf("%w to %s: %w", ErrPropagation, file, err)
		}
		o.logger.Logf("Wrote version %s to %s", version, file)
	}
	return nil
}

func (o *realOrchestrator) release(files []string) plugin.Release {
	return plugin.Release{
		Version:         o.versions.Current,
		PreviousVersion: o.versions.Previous,
		Files:           files,
		WorkDir:         o.workDir,
	}
}

func (o *realOrchestrator) transition(state State) {
	o.logger.Logf("Release state: %s -> %s", o.state, state)
	o.state = state
}

func (o *realOrchestrator) fail(err error) (string, error) {
	o.transition(Failed)
	o.reporter.Error(Messages(err)...)
	return "", err
}

func (o *realOrchestrator) Sync(ctx context.Context) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	current, err := o.resolver.Resolve(ctx, o.source.Files())
	if err != nil {
		return "", err
	}
	o.versions.Current = current
	return current, nil
}

func (o *realOrchestrator) Version() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.versions.Current
}

func (o *realOrchestrator) Versions() VersionState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.versions
}

func (o *realOrchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}
