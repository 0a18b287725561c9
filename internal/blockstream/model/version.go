package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SemanticVersion is a major.minor.patch version.
type SemanticVersion struct {
	Major int32
	Minor int32
	Patch int32
}

// ParseSemanticVersion parses "major.minor.patch". A leading "v" and any
// pre-release or build suffix on the patch component are ignored.
func ParseSemanticVersion(s string) (SemanticVersion, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")
	parts := strings.SplitN(trimmed, ".", 3)
	if len(parts) != 3 {
		return SemanticVersion{}, fmt.Errorf("version %q: expected major.minor.patch", s)
	}
	if i := strings.IndexAny(parts[2], "-+"); i >= 0 {
		parts[2] = parts[2][:i]
	}

	var out [3]int32
	for i, part := range parts {
		n, err := strconv.ParseInt(part, 10, 32)
		if err != nil || n < 0 {
			return SemanticVersion{}, fmt.Errorf("version %q: invalid component %q", s, part)
		}
		out[i] = int32(n)
	}
	return SemanticVersion{Major: out[0], Minor: out[1], Patch: out[2]}, nil
}

func (v SemanticVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
