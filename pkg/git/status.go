package git

import "strings"

// Status executes `git status --porcelain` in specified directory.
func (g *realGit) Status(workDir string) (string, error) {
	return run(workDir, "status", "--porcelain")
}

// IsClean checks that the working tree has no pending changes.
func (g *realGit) IsClean(workDir string) (bool, error) {
	status, err := g.Status(workDir)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(status) == "", nil
}
