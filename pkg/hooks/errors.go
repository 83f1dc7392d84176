package hooks

import (
	"errors"
	"fmt"
)

// Error definitions for hooks package.
var (
	ErrPluginNotFound = errors.New("plugin not found")
	ErrPluginLoad     = errors.New("cannot load plugin")
)

// PluginError reports which hook stopped a phase.
type PluginError struct {
	Phase  string
	Hook   string
	Plugin string
	Err    error
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("%s hook %q (plugin %s) failed: %v", e.Phase, e.Hook, e.Plugin, e.Err)
}

func (e *PluginError) Unwrap() error {
	return e.Err
}
