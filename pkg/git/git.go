package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides the Git commands needed around a release.
type Git interface {
	// Status executes `git status --porcelain` in specified directory.
	Status(workDir string) (string, error)

	// IsClean checks that the working tree has no staged, unstaged or untracked changes.
	IsClean(workDir string) (bool, error)

	// Add adds files to the Git staging area.
	Add(repoPath string, files ...string) error

	// Commit creates a new commit with the specified message.
	Commit(repoPath, message string) error

	// CreateTag creates an annotated tag on HEAD.
	CreateTag(repoPath, tag, message string) error

	// Push pushes the current branch to a remote.
	Push(repoPath, remote string) error

	// PushTags pushes every tag to a remote.
	PushTags(repoPath, remote string) error

	// GetRemoteURL gets the URL of a remote.
	GetRemoteURL(repoPath, remoteName string) (string, error)

	// Clone clones a repository to the specified path.
	Clone(params CloneParams) error
}

type realGit struct{}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
