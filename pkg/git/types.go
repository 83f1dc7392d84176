package git

// DefaultRemote is the remote used when none is configured.
const DefaultRemote = "origin"

// CloneParams contains parameters for Clone.
type CloneParams struct {
	RepoURL    string
	TargetPath string
	Recursive  bool
}
