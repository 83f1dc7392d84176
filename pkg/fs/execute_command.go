package fs

import (
	"fmt"
	"os/exec"
	"strings"
)

// ExecuteCommand runs a command in dir, waits for it and returns its combined output.
// An empty dir runs the command in the current working directory.
func (f *realFS) ExecuteCommand(dir, command string, args ...string) (string, error) {
	cmd := exec.Command(command, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("%w: %s %s: %w (output: %s)",
			ErrCommandFailed, command, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}
