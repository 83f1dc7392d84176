package git

// Commit creates a new commit with the specified message.
func (g *realGit) Commit(repoPath, message string) error {
	_, err := run(repoPath, "commit", "-m", message)
	return err
}
