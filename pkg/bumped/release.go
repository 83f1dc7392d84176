package bumped

import "context"

// Release moves the project to the version described by token, running the
// configured plugins around the update. The orchestrator reports failures.
func (b *realBumped) Release(ctx context.Context, token, prefix string) (string, error) {
	b.VerbosePrint("Releasing %q (prefix %q) over %d tracked files", token, prefix, b.files.Len())

	version, err := b.orchestrator.Release(ctx, token, prefix)
	if err != nil {
		return version, &ReportedError{Err: err}
	}
	return version, nil
}
