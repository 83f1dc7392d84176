//go:build unit

package reporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter(t *testing.T) {
	tests := []struct {
		name        string
		quiet       bool
		report      func(r Reporter)
		expectedOut string
		expectedErr string
	}{
		{
			name:        "success goes to out",
			report:      func(r Reporter) { r.Success("Releases version 1.0.0") },
			expectedOut: "bumped ✔ Releases version 1.0.0\n",
		},
		{
			name:        "warn goes to out",
			report:      func(r Reporter) { r.Warn("installing plugin") },
			expectedOut: "bumped ⚠ installing plugin\n",
		},
		{
			name:        "errors keep their order",
			report:      func(r Reporter) { r.Error("first", "second") },
			expectedErr: "bumped ✖ first\nbumped ✖ second\n",
		},
		{
			name:  "quiet drops success and warn",
			quiet: true,
			report: func(r Reporter) {
				r.Success("ok")
				r.Warn("careful")
			},
		},
		{
			name:        "quiet keeps errors",
			quiet:       true,
			report:      func(r Reporter) { r.Error("boom") },
			expectedErr: "bumped ✖ boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			r := New(Options{Quiet: tt.quiet, Out: &out, Err: &errOut})

			tt.report(r)

			assert.Equal(t, tt.expectedOut, out.String())
			assert.Equal(t, tt.expectedErr, errOut.String())
		})
	}
}

func TestReporter_CustomKeyword(t *testing.T) {
	var out bytes.Buffer
	r := New(Options{Keyword: "release", Out: &out})

	r.Success("done")

	assert.Equal(t, "release ✔ done\n", out.String())
}
