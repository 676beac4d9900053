package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultFrameworkVersion is the framework release the generator scaffolds against.
const DefaultFrameworkVersion = "7.0.0.alpha"

const (
	releaseSegmentCount = 3
	npmLatest           = "latest"
	mainBranch          = "main"
)

var (
	versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9a-zA-Z]+)*$`)
	segmentPattern = regexp.MustCompile(`[0-9]+|[a-zA-Z]+`)
)

// Version is a RubyGems-style version: dot separated, numeric release
// segments optionally followed by alphabetic pre-release segments.
type Version struct {
	raw      string
	segments []string
}

// ParseVersion parses a version string such as "7.0.0", "6.1.3.1" or "7.0.0.alpha".
func ParseVersion(raw string) (Version, error) {
	trimmed := strings.TrimSpace(raw)
	if !versionPattern.MatchString(trimmed) {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, raw)
	}
	return Version{raw: trimmed, segments: segmentPattern.FindAllString(trimmed, -1)}, nil
}

// MustParseVersion is like ParseVersion but panics on malformed input.
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string { return v.raw }

// Segments returns every numeric and alphabetic run, "1.2.3.pre4" -> [1 2 3 pre 4].
func (v Version) Segments() []string { return v.segments }

// ReleaseSegments returns the numeric segments before the first alphabetic one.
func (v Version) ReleaseSegments() []string {
	for i, s := range v.segments {
		if !isNumeric(s) {
			return v.segments[:i]
		}
	}
	return v.segments
}

// IsPrerelease reports whether the version carries a letter anywhere.
func (v Version) IsPrerelease() bool {
	return len(v.ReleaseSegments()) != len(v.segments)
}

// Specifier renders the constraint list used for a registry dependency on this version.
//
//	1.2.3      -> ["~> 1.2.3"]
//	1.2.3.pre4 -> ["~> 1.2.3.pre4"]
//	1.2.3.4    -> ["~> 1.2.3", ">= 1.2.3.4"]
func (v Version) Specifier() []string {
	if len(v.segments) == releaseSegmentCount || len(v.ReleaseSegments()) == releaseSegmentCount {
		return []string{"~> " + v.raw}
	}

	patch := strings.Join(firstN(v.segments, releaseSegmentCount), ".")
	return []string{"~> " + patch, ">= " + v.raw}
}

// EdgeBranch is the branch tracked by edge mode: "main" for pre-releases,
// otherwise "<major>-<minor>-stable".
func (v Version) EdgeBranch() string {
	if v.IsPrerelease() {
		return mainBranch
	}
	parts := append(firstN(v.segments, 2), "stable") //nolint:mnd // major and minor
	return strings.Join(parts, "-")
}

// NpmVersion converts a framework version into the matching npm package
// version. Every "." from the third one onwards becomes "-", so "6.1.3.1"
// becomes "6.1.3-1". Dev, edge and main modes always resolve to "latest".
func NpmVersion(version string, mode SourceMode) string {
	if mode != SourceModeRelease {
		return npmLatest
	}

	var sb strings.Builder
	dots := 0
	for _, r := range version {
		if r == '.' {
			if dots >= 2 { //nolint:mnd // major.minor.patch keep their dots
				r = '-'
			}
			dots++
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// segments are either all digits or all letters.
func isNumeric(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func firstN(segments []string, n int) []string {
	if len(segments) < n {
		n = len(segments)
	}
	out := make([]string, n)
	copy(out, segments[:n])
	return out
}
