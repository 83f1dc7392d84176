package builtin

import "errors"

// Error definitions for builtin package.
var (
	ErrCommandMissing   = errors.New("terminal plugin needs a command option")
	ErrTerminalFailed   = errors.New("terminal hook failed")
	ErrDirtyWorkingTree = errors.New("working tree has uncommitted changes")
	ErrNothingToRelease = errors.New("no version to publish")
)
