package bumped

import "errors"

// Error definitions for bumped package.
var (
	ErrFileNotFound     = errors.New("file does not exist")
	ErrSetVersion       = errors.New("version cannot be set directly, use release instead")
	ErrSetPropertyEmpty = errors.New("property and value cannot be empty")
	ErrNoVersion        = errors.New("there is not a version declared")
)

// ReportedError wraps an error that was already printed through the reporter.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}
