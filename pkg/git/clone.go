package git

import "os"

// Clone clones a repository to the specified path.
func (g *realGit) Clone(params CloneParams) error {
	args := []string{"clone", "--depth", "1"}

	if params.Recursive {
		args = append(args, "--recursive")
	}

	args = append(args, params.RepoURL, params.TargetPath)

	// Clone from a neutral directory so relative target paths are not used.
	_, err := run(os.TempDir(), args...)
	return err
}
