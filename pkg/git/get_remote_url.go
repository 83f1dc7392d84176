package git

import "strings"

// GetRemoteURL gets the URL of a remote.
func (g *realGit) GetRemoteURL(repoPath, remoteName string) (string, error) {
	if remoteName == "" {
		remoteName = DefaultRemote
	}
	output, err := run(repoPath, "remote", "get-url", remoteName)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}
