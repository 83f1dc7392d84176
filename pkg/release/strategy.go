package release

import (
	"fmt"
	"strings"

	"github.com/lerenn/bumped/pkg/semver"
)

// Strategy is the way a release token turns into the next version.
type Strategy int

// Release strategies, in classification precedence.
const (
	// SemverKeyword increments the current version by a semver release type.
	SemverKeyword Strategy = iota
	// NatureKeyword maps the nature of the changes to a semver release type.
	NatureKeyword
	// ExplicitVersion uses the token itself as the next version.
	ExplicitVersion
)

func (s Strategy) String() string {
	switch s {
	case SemverKeyword:
		return "semver"
	case NatureKeyword:
		return "nature"
	case ExplicitVersion:
		return "version"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Nature keywords.
const (
	Breaking = "breaking"
	Feature  = "feature"
	Fix      = "fix"
)

var natures = map[string]string{
	Breaking: semver.Major,
	Feature:  semver.Minor,
	Fix:      semver.Patch,
}

// NatureRelease returns the semver release type a nature keyword stands for.
func NatureRelease(nature string) (string, bool) {
	release, ok := natures[nature]
	return release, ok
}

// Classify returns the strategy of token. Semver keywords win over nature keywords,
// anything else is an explicit version.
func Classify(token string) Strategy {
	if semver.IsKeyword(token) {
		return SemverKeyword
	}
	if _, ok := natures[token]; ok {
		return NatureKeyword
	}
	return ExplicitVersion
}

// ComputeNext returns the version following current for token. prefix names the
// pre-release identifier of pre* keywords.
func ComputeNext(strategy Strategy, current, token, prefix string) (string, error) {
	switch strategy {
	case SemverKeyword:
		return increment(current, token, prefix)
	case NatureKeyword:
		release, ok := natures[token]
		if !ok {
			return "", fmt.Errorf("%w: %q is not a nature keyword", ErrInvalidVersion, token)
		}
		return increment(current, release, prefix)
	case ExplicitVersion:
		return explicit(current, token)
	default:
		return "", fmt.Errorf("%w: unknown strategy %s", ErrInvalidVersion, strategy)
	}
}

func increment(current, release, prefix string) (string, error) {
	next, err := semver.Increment(current, release, prefix)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidVersion, err)
	}
	return next, nil
}

func explicit(current, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: no version given", ErrInvalidVersion)
	}

	version, ok := semver.Clean(token)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, token)
	}
	if !semver.GreaterThan(version, current) {
		return "", fmt.Errorf("%w: %s is not greater than %s", ErrVersionNotGreater, version, current)
	}

	return version, nil
}
