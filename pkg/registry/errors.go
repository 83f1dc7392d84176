package registry

import "errors"

// Error definitions for registry package.
var (
	ErrFileAlreadyTracked = errors.New("file is already tracked")
	ErrFileNotTracked     = errors.New("file is not tracked")
	ErrFileEmpty          = errors.New("file path cannot be empty")
)
