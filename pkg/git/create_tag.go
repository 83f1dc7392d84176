package git

// CreateTag creates an annotated tag on HEAD.
func (g *realGit) CreateTag(repoPath, tag, message string) error {
	if message == "" {
		message = tag
	}
	_, err := run(repoPath, "tag", "-a", tag, "-m", message)
	return err
}
