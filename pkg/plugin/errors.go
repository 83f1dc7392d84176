package plugin

import "errors"

// Error definitions for plugin package.
var (
	ErrNameEmpty         = errors.New("plugin name cannot be empty")
	ErrAlreadyRegistered = errors.New("plugin already registered")
	ErrUnknownBuiltin    = errors.New("unknown built-in plugin")
	ErrNotInstallable    = errors.New("plugin identifier is not a repository path")
	ErrInstallFailed     = errors.New("failed to install plugin")
	ErrScriptLoad        = errors.New("failed to load plugin script")
	ErrScriptSignature   = errors.New("plugin script has an invalid Release function")
	ErrOptionType        = errors.New("invalid plugin option type")
)
