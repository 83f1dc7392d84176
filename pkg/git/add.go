package git

// Add adds files to the Git staging area.
func (g *realGit) Add(repoPath string, files ...string) error {
	args := append([]string{"add", "--"}, files...)
	_, err := run(repoPath, args...)
	return err
}
