// Package semver adapts golang.org/x/mod/semver to the bare "1.2.3" versions
// stored in manifests, and adds increments with pre-release identifiers.
package semver

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Release types accepted by Increment.
const (
	Major      = "major"
	Minor      = "minor"
	Patch      = "patch"
	PreMajor   = "premajor"
	PreMinor   = "preminor"
	PrePatch   = "prepatch"
	PreRelease = "prerelease"
)

// Keywords lists every release type accepted by Increment.
var Keywords = []string{Major, Minor, Patch, PreMajor, PreMinor, PrePatch, PreRelease}

// IsKeyword reports whether word is one of Keywords.
func IsKeyword(word string) bool {
	for _, k := range Keywords {
		if k == word {
			return true
		}
	}
	return false
}

// Valid reports whether v is a complete MAJOR.MINOR.PATCH version, without any prefix.
func Valid(v string) bool {
	if v == "" || strings.HasPrefix(v, "v") {
		return false
	}
	prefixed := "v" + v
	if !semver.IsValid(prefixed) {
		return false
	}
	// x/mod accepts shorthands like v1.2, which manifests must not carry.
	return semver.Canonical(prefixed) == strings.SplitN(prefixed, "+", 2)[0]
}

// Clean trims spaces and leading "=" or "v" characters, then validates the result.
// Build metadata is dropped.
func Clean(v string) (string, bool) {
	v = strings.TrimLeft(strings.TrimSpace(v), "=v")
	if !Valid(v) {
		return "", false
	}
	return strings.TrimPrefix(semver.Canonical("v"+v), "v"), true
}

// Compare returns -1, 0 or +1 following semantic version precedence.
// An invalid version sorts before every valid one.
func Compare(a, b string) int {
	return semver.Compare("v"+a, "v"+b)
}

// GreaterThan reports whether a is strictly greater than b.
func GreaterThan(a, b string) bool {
	return Compare(a, b) > 0
}

// Max returns the highest version, or an empty string when versions is empty.
func Max(versions ...string) string {
	var highest string
	for _, v := range versions {
		if highest == "" || GreaterThan(v, highest) {
			highest = v
		}
	}
	return highest
}

// Increment bumps current by the release type. identifier, when set, names the
// pre-release for the pre* release types (1.2.3 + premajor + beta = 2.0.0-beta.0).
func Increment(current, release, identifier string) (string, error) {
	v, err := parse(current)
	if err != nil {
		return "", err
	}

	switch release {
	case Major:
		// A pre-major version is released as the same major.
		if v.minor != 0 || v.patch != 0 || len(v.pre) == 0 {
			v.major++
		}
		v.minor, v.patch, v.pre = 0, 0, nil
	case Minor:
		if v.patch != 0 || len(v.pre) == 0 {
			v.minor++
		}
		v.patch, v.pre = 0, nil
	case Patch:
		if len(v.pre) == 0 {
			v.patch++
		}
		v.pre = nil
	case PreMajor:
		v.major++
		v.minor, v.patch, v.pre = 0, 0, nil
		v.incPre(identifier)
	case PreMinor:
		v.minor++
		v.patch, v.pre = 0, nil
		v.incPre(identifier)
	case PrePatch:
		v.patch++
		v.pre = nil
		v.incPre(identifier)
	case PreRelease:
		if len(v.pre) == 0 {
			v.patch++
		}
		v.incPre(identifier)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownRelease, release)
	}

	return v.String(), nil
}

type version struct {
	major, minor, patch int
	pre                 []string
}

func parse(v string) (*version, error) {
	if !Valid(v) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}

	core := strings.SplitN(v, "+", 2)[0]
	var pre string
	if i := strings.Index(core, "-"); i >= 0 {
		core, pre = core[:i], core[i+1:]
	}

	nums := strings.Split(core, ".")
	parsed := &version{}
	for i, dst := range []*int{&parsed.major, &parsed.minor, &parsed.patch} {
		n, err := strconv.Atoi(nums[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, v)
		}
		*dst = n
	}
	if pre != "" {
		parsed.pre = strings.Split(pre, ".")
	}
	return parsed, nil
}

// incPre bumps the last numeric pre-release part, or starts one at 0.
func (v *version) incPre(identifier string) {
	if len(v.pre) == 0 {
		v.pre = []string{"0"}
	} else {
		bumped := false
		for i := len(v.pre) - 1; i >= 0; i-- {
			if n, err := strconv.Atoi(v.pre[i]); err == nil {
				v.pre[i] = strconv.Itoa(n + 1)
				bumped = true
				break
			}
		}
		if !bumped {
			v.pre = append(v.pre, "0")
		}
	}

	if identifier == "" {
		return
	}
	if v.pre[0] == identifier {
		if len(v.pre) < 2 {
			v.pre = []string{identifier, "0"}
		} else if _, err := strconv.Atoi(v.pre[1]); err != nil {
			v.pre = []string{identifier, "0"}
		}
		return
	}
	v.pre = []string{identifier, "0"}
}

func (v *version) String() string {
	base := fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
	if len(v.pre) > 0 {
		return base + "-" + strings.Join(v.pre, ".")
	}
	return base
}
