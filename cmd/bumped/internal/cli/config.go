// Package cli provides common configuration and utility functions for the bumped CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/bumped/pkg/config"
	"github.com/lerenn/bumped/pkg/fs"
	"github.com/lerenn/bumped/pkg/logger"
	"github.com/lerenn/bumped/pkg/reporter"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// WorkDir overrides the project directory.
	WorkDir string
)

// ResolveWorkDir returns the project directory, the current one by default.
func ResolveWorkDir() (string, error) {
	if WorkDir != "" {
		return filepath.Abs(WorkDir)
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWorkDir, err)
	}
	return dir, nil
}

// NewConfigManager creates a new Manager with the appropriate config path.
// A relative --config is resolved against the project directory.
func NewConfigManager(filesystem fs.FS, workDir string) config.Manager {
	path := ConfigPath
	if path == "" {
		path = config.DefaultConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	return config.NewManager(filesystem, path)
}

// NewReporter creates the reporter honoring --quiet.
func NewReporter() reporter.Reporter {
	return reporter.New(reporter.Options{Quiet: Quiet})
}

// NewLogger creates the logger honoring --verbose.
func NewLogger() logger.Logger {
	if Verbose {
		return logger.NewVerboseLogger()
	}
	return logger.NewNoopLogger()
}
