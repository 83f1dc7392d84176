// Package plugin defines what a release plugin is and how one is found, installed and loaded.
package plugin

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/bumped/pkg/logger"
	"github.com/lerenn/bumped/pkg/reporter"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=plugin.go -destination=mocks/plugin.gen.go -package=mocks

// Placeholders replaced by Release.Expand.
const (
	NewVersionPlaceholder = "$newVersion"
	OldVersionPlaceholder = "$oldVersion"
)

// Release is the read-only view of the ongoing release handed to plugins.
type Release struct {
	Phase           string
	Version         string
	PreviousVersion string
	Files           []string
	WorkDir         string
}

// Expand substitutes the version placeholders in s.
func (r Release) Expand(s string) string {
	return strings.NewReplacer(
		NewVersionPlaceholder, r.Version,
		OldVersionPlaceholder, r.PreviousVersion,
	).Replace(s)
}

// Params is what a plugin receives for one hook.
type Params struct {
	Release  Release
	Options  map[string]interface{}
	Title    string
	Path     string
	Reporter reporter.Reporter
	Logger   logger.Logger
}

// String returns the string option key, or def when it is not set.
func (p Params) String(key, def string) (string, error) {
	raw, ok := p.Options[key]
	if !ok || raw == nil {
		return def, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrOptionType, key, raw)
	}
	return s, nil
}

// Bool returns the boolean option key, or def when it is not set.
func (p Params) Bool(key string, def bool) (bool, error) {
	raw, ok := p.Options[key]
	if !ok || raw == nil {
		return def, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean, got %T", ErrOptionType, key, raw)
	}
	return b, nil
}

// Plugin is anything that can run as a release hook.
type Plugin interface {
	Execute(ctx context.Context, params Params) error
}

// Func adapts a function to the Plugin interface.
type Func func(ctx context.Context, params Params) error

// Execute calls f.
func (f Func) Execute(ctx context.Context, params Params) error {
	return f(ctx, params)
}
