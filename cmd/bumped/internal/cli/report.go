package cli

import (
	"errors"

	"github.com/lerenn/bumped/pkg/bumped"
	"github.com/lerenn/bumped/pkg/release"
)

// Report prints err unless bumped already did.
func Report(err error) {
	var reported *bumped.ReportedError
	if errors.As(err, &reported) {
		return
	}
	NewReporter().Error(release.Messages(err)...)
}
