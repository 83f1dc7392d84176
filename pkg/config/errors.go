package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse      = errors.New("failed to parse config file")
	ErrConfigNotInitialized = errors.New("bumped configuration not found. Run 'bumped init' to initialize")

	// Configuration validation errors.
	ErrFileEmpty       = errors.New("tracked file path cannot be empty")
	ErrFileDuplicated  = errors.New("tracked file declared more than once")
	ErrHookPluginEmpty = errors.New("hook plugin cannot be empty")
	ErrHooksNotMapping = errors.New("hooks must be a mapping of description to plugin settings")
)
