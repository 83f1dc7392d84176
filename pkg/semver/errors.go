package semver

import "errors"

// Error definitions for semver package.
var (
	ErrInvalidVersion = errors.New("invalid semantic version")
	ErrUnknownRelease = errors.New("unknown release type")
)
