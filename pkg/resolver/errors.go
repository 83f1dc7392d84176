package resolver

import "errors"

// Error definitions for resolver package.
var (
	// ErrResolution is returned when a tracked manifest cannot be read or holds a bad version.
	ErrResolution = errors.New("cannot resolve version")
)
