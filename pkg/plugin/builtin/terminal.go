package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/bumped/pkg/fs"
	"github.com/lerenn/bumped/pkg/plugin"
)

// Terminal runs the shell command of its "command" option in the project directory.
type Terminal struct {
	fs fs.FS
}

// NewTerminal creates a Terminal plugin.
func NewTerminal(fs fs.FS) *Terminal {
	return &Terminal{fs: fs}
}

// Execute runs the command with the version placeholders expanded.
func (t *Terminal) Execute(ctx context.Context, params plugin.Params) error {
	command, err := params.String("command", "")
	if err != nil {
		return err
	}
	if strings.TrimSpace(command) == "" {
		return ErrCommandMissing
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	command = params.Release.Expand(command)
	output, err := t.fs.ExecuteCommand(workDir(params), "sh", "-c", command)
	if output = strings.TrimSpace(output); output != "" && params.Logger != nil {
		params.Logger.Logf("%s", output)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalFailed, err)
	}
	return nil
}
