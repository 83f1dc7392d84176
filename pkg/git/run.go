package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// run executes git with args in dir and returns its combined output.
func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %w (command: git %s, output: %s)",
			ErrCommandFailed, err, strings.Join(args, " "), strings.TrimSpace(string(output)))
	}
	return string(output), nil
}
