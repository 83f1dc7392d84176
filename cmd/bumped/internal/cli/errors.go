package cli

import "errors"

// Error definitions for cli package.
var (
	ErrWorkDir = errors.New("failed to resolve working directory")
)
