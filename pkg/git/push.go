package git

// Push pushes the current branch to a remote.
func (g *realGit) Push(repoPath, remote string) error {
	if remote == "" {
		remote = DefaultRemote
	}
	_, err := run(repoPath, "push", remote, "HEAD")
	return err
}

// PushTags pushes every tag to a remote.
func (g *realGit) PushTags(repoPath, remote string) error {
	if remote == "" {
		remote = DefaultRemote
	}
	_, err := run(repoPath, "push", remote, "--tags")
	return err
}
