// Package manifest reads and writes fields of project manifests (package.json, Chart.yaml, ...).
package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/bumped/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manifest.go -destination=mocks/manifest.gen.go -package=mocks

// VersionProperty is the field kept in sync across tracked files.
const VersionProperty = "version"

// Manifest reads and writes manifest fields.
type Manifest interface {
	// ReadVersion returns the version field, and false when the file has no string version.
	ReadVersion(path string) (string, bool, error)

	// WriteField sets property to value. Dotted properties ("repository.url") and
	// array values ("[a, b]") are always written; a plain property is only written
	// when the file already has it, unless force is set.
	WriteField(path, property, value string, force bool) error
}

// codec abstracts the manifest format.
type codec interface {
	get(data []byte, property string) (value string, found bool, err error)
	has(data []byte, property string) (bool, error)
	set(data []byte, property string, value interface{}) ([]byte, error)
}

type realManifest struct {
	fs fs.FS
}

// New creates a Manifest working on JSON and YAML files.
func New(fs fs.FS) Manifest {
	return &realManifest{fs: fs}
}

func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	default:
		return jsonCodec{}
	}
}

func (m *realManifest) ReadVersion(path string) (string, bool, error) {
	data, err := m.fs.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	version, found, err := codecFor(path).get(data, VersionProperty)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", path, err)
	}
	return version, found, nil
}

func (m *realManifest) WriteField(path, property, value string, force bool) error {
	if property == "" {
		return ErrPropertyEmpty
	}

	data, err := m.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	c := codecFor(path)
	items, isArray := parseArray(value)
	isDotted := strings.Contains(property, ".")

	var updated []byte
	switch {
	case isArray:
		updated, err = c.set(data, property, items)
	case isDotted:
		updated, err = c.set(data, property, value)
	default:
		exists, hasErr := c.has(data, property)
		if hasErr != nil {
			return fmt.Errorf("%s: %w", path, hasErr)
		}
		if !exists && !force {
			return nil
		}
		updated, err = c.set(data, property, value)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := m.fs.WriteFileAtomic(path, updated, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// parseArray turns "[a, b]" into []string{"a", "b"}.
func parseArray(value string) ([]string, bool) {
	if len(value) < 2 || value[0] != '[' || value[len(value)-1] != ']' {
		return nil, false
	}
	inner := strings.TrimSpace(value[1 : len(value)-1])
	if inner == "" {
		return []string{}, true
	}
	items := strings.Split(inner, ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items, true
}
