package bumped

import "fmt"

// RemoveFile stops tracking a file and saves the configuration.
func (b *realBumped) RemoveFile(file string) error {
	if err := b.files.Remove(file); err != nil {
		return b.fail(err)
	}
	b.deps.Reporter.Success(fmt.Sprintf("%s has been removed", file))

	if err := b.save(); err != nil {
		return b.fail(err)
	}
	return nil
}
