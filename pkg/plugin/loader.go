package plugin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=loader.go -destination=mocks/loader.gen.go -package=mocks

// ScriptFuncName is the function a script plugin must declare in package main:
//
//	func Release(version, previousVersion string, options map[string]interface{}) error
const ScriptFuncName = "Release"

// ScriptFunc is the signature of ScriptFuncName.
type ScriptFunc func(version, previousVersion string, options map[string]interface{}) error

// Loader turns a plugin location into a callable Plugin.
type Loader interface {
	Load(location string) (Plugin, error)
}

type realLoader struct {
	registry *Registry
}

// NewLoader creates a Loader for built-in locations and script plugins.
func NewLoader(registry *Registry) Loader {
	return &realLoader{registry: registry}
}

func (l *realLoader) Load(location string) (Plugin, error) {
	if name, ok := strings.CutPrefix(location, BuiltinScheme); ok {
		return l.registry.Get(name)
	}
	return loadScript(location)
}

// loadScript interprets a .go file, or every .go file of a directory, and binds its Release function.
func loadScript(location string) (Plugin, error) {
	sources, err := scriptSources(location)
	if err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptLoad, err)
	}
	for _, source := range sources {
		if _, err := i.EvalPath(source); err != nil {
			return nil, fmt.Errorf("%w: interpret %s: %w", ErrScriptLoad, source, err)
		}
	}

	value, err := i.Eval(ScriptFuncName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must define %s: %w", ErrScriptSignature, location, ScriptFuncName, err)
	}
	if !value.IsValid() || !value.CanInterface() {
		return nil, fmt.Errorf("%w: %s", ErrScriptSignature, location)
	}

	fn, ok := value.Interface().(func(string, string, map[string]interface{}) error)
	if !ok {
		return nil, fmt.Errorf("%w: %s declares %s as %s", ErrScriptSignature, location, ScriptFuncName, value.Type())
	}

	return scriptPlugin(fn), nil
}

func scriptSources(location string) ([]string, error) {
	info, err := os.Stat(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptLoad, err)
	}
	if !info.IsDir() {
		return []string{location}, nil
	}

	entries, err := os.ReadDir(location)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrScriptLoad, location, err)
	}
	var sources []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ScriptExtension || strings.HasSuffix(name, "_test.go") {
			continue
		}
		sources = append(sources, filepath.Join(location, name))
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no %s file in %s", ErrScriptLoad, ScriptExtension, location)
	}
	sort.Strings(sources)
	return sources, nil
}

func scriptPlugin(fn ScriptFunc) Plugin {
	return Func(func(ctx context.Context, params Params) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		options := params.Options
		if options == nil {
			options = map[string]interface{}{}
		}
		return fn(params.Release.Version, params.Release.PreviousVersion, options)
	})
}
