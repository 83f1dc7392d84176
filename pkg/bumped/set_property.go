package bumped

import (
	"fmt"
	"strings"

	"github.com/lerenn/bumped/pkg/manifest"
)

// SetProperty writes property into every tracked file, creating it when missing.
// Dotted properties address nested fields and "[a, b]" values are written as arrays.
func (b *realBumped) SetProperty(property, value string) error {
	if strings.TrimSpace(property) == "" || strings.TrimSpace(value) == "" {
		return b.fail(ErrSetPropertyEmpty)
	}
	if property == manifest.VersionProperty {
		return b.fail(ErrSetVersion)
	}

	for _, file := range b.files.Files() {
		if err := b.deps.Manifest.WriteField(b.path(file), property, value, true); err != nil {
			return b.fail(err)
		}
		b.VerbosePrint("Set %s in %s", property, file)
	}

	b.deps.Reporter.Success(fmt.Sprintf("Property %s set to %s", property, value))
	return nil
}
