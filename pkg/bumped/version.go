package bumped

import "fmt"

// Version prints and returns the current version.
func (b *realBumped) Version() (string, error) {
	version := b.orchestrator.Version()
	if version == "" {
		return "", b.fail(ErrNoVersion)
	}
	b.deps.Reporter.Success(fmt.Sprintf("Current version is %s", version))
	return version, nil
}
