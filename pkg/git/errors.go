// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrCommandFailed      = errors.New("git command failed")
	ErrRepositoryNotClean = errors.New("repository is not clean")
)
