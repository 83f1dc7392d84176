package manifest

import "errors"

// Error definitions for manifest package.
var (
	ErrInvalidManifest = errors.New("invalid manifest")
	ErrPropertyEmpty   = errors.New("property cannot be empty")
	ErrNotAMapping     = errors.New("property parent is not an object")
)
