package projectpath

import (
	"fmt"
	"regexp"
	"strings"
)

var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

func isValidSegmentName(name string) bool {
	if name == "." || name == ".." || name == "-" {
		return false
	}
	return true
}

// ValidateName checks that name can be used as a single project name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if !segmentRegex.MatchString(name) {
		return fmt.Errorf("invalid project name: %q", name)
	}
	if !isValidSegmentName(name) {
		return fmt.Errorf("invalid project name: %q", name)
	}
	return nil
}

// Parse converts a raw path into a Path. A leading colon anchors the path at
// the root; a bare name such as "app" is read relative to the root as well.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return Path{}, fmt.Errorf("project path cannot be empty")
	}
	if raw == Separator {
		return Root(), nil
	}

	var p Path
	for _, segment := range strings.Split(strings.TrimPrefix(raw, Separator), Separator) {
		if segment == "" {
			return Path{}, fmt.Errorf("project path %q contains an empty segment", raw)
		}
		if err := ValidateName(segment); err != nil {
			return Path{}, fmt.Errorf("project path %q: %w", raw, err)
		}
		p.Segments = append(p.Segments, segment)
	}
	return p, nil
}

// MustParse is like Parse but panics on error. It is meant for constants
// and tests.
func MustParse(raw string) Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}
