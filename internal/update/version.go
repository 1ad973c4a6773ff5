package update

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// ErrValidation indicates a malformed version string, from any source.
var ErrValidation = errors.New("invalid version string")

var versionRegex = regexp.MustCompile(`^\d+(\.\d+)+$`)

// ValidateVersionString reports whether s is a dotted sequence of
// non-negative integers with at least two components, e.g. "3.11.5".
func ValidateVersionString(s string) bool {
	return versionRegex.MatchString(s)
}

// Version represents a dotted release version such as "3.11.5".
type Version struct {
	raw    string
	parsed *goversion.Version
}

// ParseVersion parses a dotted-integer version string. The string must have
// at least two components; anything else fails with ErrValidation.
func ParseVersion(s string) (*Version, error) {
	if !ValidateVersionString(s) {
		return nil, fmt.Errorf("%w: %q", ErrValidation, s)
	}
	parsed, err := goversion.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrValidation, s, err)
	}
	return &Version{raw: s, parsed: parsed}, nil
}

// String returns the original version string.
func (v *Version) String() string {
	return v.raw
}

// Segments returns the numeric components, zero-padded to at least three.
func (v *Version) Segments() []int {
	return v.parsed.Segments()
}

// MajorMinor returns the major.minor channel, e.g. "3.11" for "3.11.5".
func (v *Version) MajorMinor() string {
	seg := v.parsed.Segments()
	return fmt.Sprintf("%d.%d", seg[0], seg[1])
}

// Compare compares two versions.
// Returns:
//   - 1 if v > other
//   - 0 if v == other
//   - -1 if v < other
//
// Missing trailing components count as zero, so "3.11" equals "3.11.0".
func (v *Version) Compare(other *Version) int {
	return v.parsed.Compare(other.parsed)
}

// IsGreaterThan returns true if v > other.
func (v *Version) IsGreaterThan(other *Version) bool {
	return v.Compare(other) > 0
}

// IsLessThan returns true if v < other.
func (v *Version) IsLessThan(other *Version) bool {
	return v.Compare(other) < 0
}

// IsEqual returns true if v == other.
func (v *Version) IsEqual(other *Version) bool {
	return v.Compare(other) == 0
}

// CompareVersions compares two version strings.
// Returns:
//   - 1 if v1 > v2
//   - 0 if v1 == v2
//   - -1 if v1 < v2
//   - error if either version is invalid
func CompareVersions(v1, v2 string) (int, error) {
	ver1, err := ParseVersion(v1)
	if err != nil {
		return 0, fmt.Errorf("invalid version v1: %w", err)
	}

	ver2, err := ParseVersion(v2)
	if err != nil {
		return 0, fmt.Errorf("invalid version v2: %w", err)
	}

	return ver1.Compare(ver2), nil
}

// Channel returns the major.minor prefix of a version string, the line that
// distribution packages and brew formulas are named after.
func Channel(s string) (string, error) {
	if !ValidateVersionString(s) {
		return "", fmt.Errorf("%w: %q", ErrValidation, s)
	}
	parts := strings.SplitN(s, ".", 3)
	return parts[0] + "." + parts[1], nil
}
