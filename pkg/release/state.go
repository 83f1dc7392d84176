package release

import "fmt"

// State is a step of the release state machine.
type State int

// Release states. Failed is reachable from every state before Done.
const (
	Idle State = iota
	ResolvingVersion
	RunningPre
	ComputingNext
	Propagating
	RunningPost
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ResolvingVersion:
		return "resolving-version"
	case RunningPre:
		return "running-pre"
	case ComputingNext:
		return "computing-next"
	case Propagating:
		return "propagating"
	case RunningPost:
		return "running-post"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// VersionState is the version known before and after the last release.
// An empty Current means no version is declared yet.
type VersionState struct {
	Current  string
	Previous string
}
