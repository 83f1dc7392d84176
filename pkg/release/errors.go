package release

import "errors"

// Error definitions for release package.
var (
	// ErrInvalidVersion is returned when a release token is neither a keyword nor a valid version.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrVersionNotGreater is returned when an explicit version does not move the project forward.
	ErrVersionNotGreater = errors.New("version is not greater than the current version")
	// ErrPropagation is returned when the new version cannot be written to a tracked file.
	ErrPropagation = errors.New("cannot write version")
)
