package plugin

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/bumped/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=locator.go -destination=mocks/locator.gen.go -package=mocks

const (
	// BuiltinScheme prefixes the location of plugins compiled into the binary.
	BuiltinScheme = "builtin:"
	// ScriptExtension is the extension of single file script plugins.
	ScriptExtension = ".go"
)

// PluginsDir is where plugins live, relative to a project or to the home directory.
var PluginsDir = filepath.Join(".bumped", "plugins")

// Locator finds where a plugin lives.
type Locator interface {
	// Locate returns the location of the plugin id, and false when it cannot be found.
	Locate(id string) (string, bool)
}

type realLocator struct {
	fs       fs.FS
	registry *Registry
	dirs     []string
}

// NewLocator creates a Locator checking built-ins first, then dirs in order.
func NewLocator(fs fs.FS, registry *Registry, dirs ...string) Locator {
	return &realLocator{
		fs:       fs,
		registry: registry,
		dirs:     dirs,
	}
}

// LocalDir returns the project plugin directory.
func LocalDir(workDir string) string {
	return filepath.Join(workDir, PluginsDir)
}

// GlobalDir returns the user plugin directory.
func GlobalDir(fs fs.FS) (string, error) {
	home, err := fs.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, PluginsDir), nil
}

func (l *realLocator) Locate(id string) (string, bool) {
	if id == "" {
		return "", false
	}

	if l.registry != nil && l.registry.Has(id) {
		return BuiltinScheme + id, true
	}

	for _, dir := range l.dirs {
		script := filepath.Join(dir, id+ScriptExtension)
		if isDir, err := l.fs.IsDir(script); err == nil && !isDir {
			return script, true
		}

		pkg := filepath.Join(dir, id)
		if isDir, err := l.fs.IsDir(pkg); err == nil && isDir {
			return pkg, true
		}
	}

	return "", false
}
