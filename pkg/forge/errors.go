package forge

import "errors"

// Forge-specific errors
var (
	ErrUnsupportedForge   = errors.New("unsupported forge")
	ErrInvalidRemote      = errors.New("cannot extract owner and repository from remote")
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrReleaseFailed      = errors.New("failed to create release")
	ErrRateLimited        = errors.New("rate limited by forge API")
	ErrUnauthorized       = errors.New("unauthorized access to forge API")
)
