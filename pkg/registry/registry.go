// Package registry holds the ordered list of tracked manifest files.
//
// The first file is the primary one: it always receives the released version,
// even when it did not declare one before.
package registry

import (
	"fmt"
	"slices"
)

// Registry is an ordered set of tracked file paths.
type Registry struct {
	files []string
}

// New creates a Registry from already persisted files, dropping duplicates.
func New(files []string) *Registry {
	r := &Registry{files: make([]string, 0, len(files))}
	for _, f := range files {
		if f != "" && !r.Has(f) {
			r.files = append(r.files, f)
		}
	}
	return r
}

// Files returns a copy of the tracked files, in order.
func (r *Registry) Files() []string {
	return slices.Clone(r.files)
}

// Len returns the number of tracked files.
func (r *Registry) Len() int {
	return len(r.files)
}

// Primary returns the first tracked file.
func (r *Registry) Primary() (string, bool) {
	if len(r.files) == 0 {
		return "", false
	}
	return r.files[0], true
}

// Has reports whether file is tracked.
func (r *Registry) Has(file string) bool {
	return slices.Contains(r.files, file)
}

// Add appends file at the end of the registry.
func (r *Registry) Add(file string) error {
	if file == "" {
		return ErrFileEmpty
	}
	if r.Has(file) {
		return fmt.Errorf("%w: %s", ErrFileAlreadyTracked, file)
	}
	r.files = append(r.files, file)
	return nil
}

// Remove drops file, keeping the order of the others.
func (r *Registry) Remove(file string) error {
	i := slices.Index(r.files, file)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrFileNotTracked, file)
	}
	r.files = slices.Delete(r.files, i, i+1)
	return nil
}
