package hooks

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/lerenn/bumped/pkg/config"
	"github.com/lerenn/bumped/pkg/logger"
	"github.com/lerenn/bumped/pkg/plugin"
	"github.com/lerenn/bumped/pkg/reporter"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=pipeline.go -destination=mocks/pipeline.gen.go -package=mocks

// Pipeline runs the hooks of a phase one after the other.
type Pipeline interface {
	// Execute runs hooks in order and stops at the first failure, returned as a *PluginError.
	Execute(ctx context.Context, phase string, hooks config.Hooks, release plugin.Release) error
}

// PipelineParams contains the collaborators of a Pipeline.
type PipelineParams struct {
	Locator   plugin.Locator
	Installer plugin.Installer
	Loader    plugin.Loader
	Observer  Observer
	Reporter  reporter.Reporter
	Logger    logger.Logger
}

type realPipeline struct {
	locator   plugin.Locator
	installer plugin.Installer
	loader    plugin.Loader
	observer  Observer
	reporter  reporter.Reporter
	logger    logger.Logger

	// Loaded plugins by identifier. Never evicted.
	cache map[string]plugin.Plugin
	mu    sync.Mutex
}

// NewPipeline creates a Pipeline instance.
func NewPipeline(params PipelineParams) Pipeline {
	p := &realPipeline{
		locator:   params.Locator,
		installer: params.Installer,
		loader:    params.Loader,
		observer:  params.Observer,
		reporter:  params.Reporter,
		logger:    params.Logger,
		cache:     make(map[string]plugin.Plugin),
	}
	if p.observer == nil {
		p.observer = Observers()
	}
	if p.reporter == nil {
		p.reporter = reporter.NewDiscard()
	}
	if p.logger == nil {
		p.logger = logger.NewNoopLogger()
	}
	return p
}

func (p *realPipeline) Execute(ctx context.Context, phase string, hooks config.Hooks, release plugin.Release) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(hooks) == 0 {
		p.logger.Logf("No %s hooks to run", phase)
		return nil
	}

	release.Phase = phase
	for _, hook := range hooks {
		if err := p.run(ctx, hook, release); err != nil {
			return &PluginError{
				Phase:  phase,
				Hook:   hook.Description,
				Plugin: hook.Plugin,
				Err:    err,
			}
		}
	}

	return nil
}

func (p *realPipeline) run(ctx context.Context, hook config.Hook, release plugin.Release) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	location, err := p.resolve(ctx, hook.Plugin)
	if err != nil {
		return err
	}

	pl, err := p.load(hook.Plugin, location)
	if err != nil {
		return err
	}

	event := Event{
		Phase:       release.Phase,
		Description: hook.Description,
		Plugin:      hook.Plugin,
		Start:       time.Now(),
	}
	p.observer.OnStart(event)

	err = pl.Execute(ctx, plugin.Params{
		Release:  release,
		Options:  maps.Clone(hook.Options),
		Title:    hook.Description,
		Path:     location,
		Reporter: p.reporter,
		Logger:   p.logger,
	})

	p.observer.OnStop(event, time.Since(event.Start), err)
	return err
}

// resolve locates a plugin, installing it once when it is missing.
func (p *realPipeline) resolve(ctx context.Context, id string) (string, error) {
	if location, found := p.locator.Locate(id); found {
		return location, nil
	}

	p.reporter.Warn(fmt.Sprintf("Plugin %s not found, installing it", id))
	if err := p.installer.Install(ctx, id); err != nil {
		p.reporter.Warn(err.Error())
	}

	if location, found := p.locator.Locate(id); found {
		return location, nil
	}
	return "", fmt.Errorf("%w: %s", ErrPluginNotFound, id)
}

func (p *realPipeline) load(id, location string) (plugin.Plugin, error) {
	if pl, ok := p.cache[id]; ok {
		return pl, nil
	}

	p.logger.Logf("Loading plugin %s from %s", id, location)
	pl, err := p.loader.Load(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPluginLoad, id, err)
	}

	p.cache[id] = pl
	return pl, nil
}
