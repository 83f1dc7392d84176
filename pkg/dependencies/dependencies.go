// Package dependencies provides a centralized dependency container for bumped.
// Collaborators are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/bumped/pkg/config"
	"github.com/lerenn/bumped/pkg/forge"
	"github.com/lerenn/bumped/pkg/fs"
	"github.com/lerenn/bumped/pkg/git"
	"github.com/lerenn/bumped/pkg/logger"
	"github.com/lerenn/bumped/pkg/manifest"
	"github.com/lerenn/bumped/pkg/plugin"
	"github.com/lerenn/bumped/pkg/reporter"
	"github.com/lerenn/bumped/pkg/resolver"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing        = errors.New("fs dependency is required but not set")
	ErrGitMissing       = errors.New("git dependency is required but not set")
	ErrConfigMissing    = errors.New("config dependency is required but not set")
	ErrManifestMissing  = errors.New("manifest dependency is required but not set")
	ErrResolverMissing  = errors.New("resolver dependency is required but not set")
	ErrLoggerMissing    = errors.New("logger dependency is required but not set")
	ErrReporterMissing  = errors.New("reporter dependency is required but not set")
	ErrPluginsMissing   = errors.New("plugin registry dependency is required but not set")
	ErrLocatorMissing   = errors.New("plugin locator dependency is required but not set")
	ErrInstallerMissing = errors.New("plugin installer dependency is required but not set")
	ErrLoaderMissing    = errors.New("plugin loader dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS       fs.FS
	Git      git.Git
	Config   config.Manager
	Manifest manifest.Manifest
	Resolver resolver.Resolver
	// Forge is optional: only the github-release plugin needs it.
	Forge     forge.Forge
	Logger    logger.Logger
	Reporter  reporter.Reporter
	Plugins   *plugin.Registry
	Locator   plugin.Locator
	Installer plugin.Installer
	Loader    plugin.Loader
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	filesystem := fs.NewFS()
	m := manifest.New(filesystem)
	return &Dependencies{
		FS:       filesystem,
		Git:      git.NewGit(),
		Manifest: m,
		Resolver: resolver.New(m),
		Logger:   logger.NewNoopLogger(),
		Reporter: reporter.NewDiscard(),
		// Note: Config and the plugin runtime depend on the working directory
		// and are set via With* methods
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithManifest sets the manifest reader/writer and returns the instance for chaining.
func (d *Dependencies) WithManifest(m manifest.Manifest) *Dependencies {
	d.Manifest = m
	return d
}

// WithResolver sets the version resolver and returns the instance for chaining.
func (d *Dependencies) WithResolver(r resolver.Resolver) *Dependencies {
	d.Resolver = r
	return d
}

// WithForge sets the forge and returns the instance for chaining.
func (d *Dependencies) WithForge(f forge.Forge) *Dependencies {
	d.Forge = f
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithReporter sets the reporter and returns the instance for chaining.
func (d *Dependencies) WithReporter(r reporter.Reporter) *Dependencies {
	d.Reporter = r
	return d
}

// WithPlugins sets the plugin registry and returns the instance for chaining.
func (d *Dependencies) WithPlugins(registry *plugin.Registry) *Dependencies {
	d.Plugins = registry
	return d
}

// WithLocator sets the plugin locator and returns the instance for chaining.
func (d *Dependencies) WithLocator(l plugin.Locator) *Dependencies {
	d.Locator = l
	return d
}

// WithInstaller sets the plugin installer and returns the instance for chaining.
func (d *Dependencies) WithInstaller(i plugin.Installer) *Dependencies {
	d.Installer = i
	return d
}

// WithLoader sets the plugin loader and returns the instance for chaining.
func (d *Dependencies) WithLoader(l plugin.Loader) *Dependencies {
	d.Loader = l
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Git == nil, ErrGitMissing},
		{d.Config == nil, ErrConfigMissing},
		{d.Manifest == nil, ErrManifestMissing},
		{d.Resolver == nil, ErrResolverMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.Reporter == nil, ErrReporterMissing},
		{d.Plugins == nil, ErrPluginsMissing},
		{d.Locator == nil, ErrLocatorMissing},
		{d.Installer == nil, ErrInstallerMissing},
		{d.Loader == nil, ErrLoaderMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
