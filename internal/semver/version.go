// Package semver implements the strict three-integer major.minor.patch
// version scheme used in addon TOC files. No prerelease or build metadata
// is supported.
package semver

import (
	"fmt"
	"regexp"
	"strconv"
)

// BumpKind selects which component of a version to increment.
type BumpKind string

const (
	// BumpMajor increments major and resets minor and patch to 0.
	BumpMajor BumpKind = "major"
	// BumpMinor increments minor and resets patch to 0.
	BumpMinor BumpKind = "minor"
	// BumpPatch increments patch only. This is the default bump kind.
	BumpPatch BumpKind = "patch"
)

// versionPattern matches a strict three-integer version string.
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// Version is a parsed major.minor.patch tuple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a strict major.minor.patch version string.
func Parse(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("invalid version %q: expected major.minor.patch", s)
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid major component in %q: %w", s, err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor component in %q: %w", s, err)
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, fmt.Errorf("invalid patch component in %q: %w", s, err)
	}
	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// IsValid reports whether s is a strict major.minor.patch version string.
func IsValid(s string) bool {
	return versionPattern.MatchString(s)
}

// String returns the canonical major.minor.patch form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare compares two versions numerically, component by component in
// major, minor, patch priority order. It returns -1 if a < b, 0 if equal,
// and 1 if a > b. String comparison is never used.
func Compare(a, b Version) int {
	if a.Major != b.Major {
		return cmpInt(a.Major, b.Major)
	}
	if a.Minor != b.Minor {
		return cmpInt(a.Minor, b.Minor)
	}
	return cmpInt(a.Patch, b.Patch)
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Next returns the version that follows v under the given bump kind.
func (v Version) Next(kind BumpKind) Version {
	switch kind {
	case BumpMajor:
		return Version{Major: v.Major + 1}
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}

// Highest returns the numerically highest version among the given strings.
// Strings that do not parse as major.minor.patch are skipped. Ties resolve
// to the first occurrence. The second return value is false when no string
// parses, which callers must treat as "nothing to bump".
func Highest(versions []string) (Version, bool) {
	var best Version
	found := false
	for _, s := range versions {
		v, err := Parse(s)
		if err != nil {
			continue
		}
		if !found || Compare(v, best) > 0 {
			best = v
			found = true
		}
	}
	return best, found
}
