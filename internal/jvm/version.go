package jvm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Version is a Java language level, stored as its feature release number
// (8 for "1.8", 17 for "17"). The zero value means "unset".
type Version int

const (
	Version1_8 Version = 8
	Version11  Version = 11
	Version17  Version = 17
	Version21  Version = 21
)

// IsSet reports whether v holds a real language level.
func (v Version) IsSet() bool {
	return v > 0
}

// String renders the version the way javac and kotlinc spell it: "1.8" and
// below keep the legacy prefix, later releases are a bare number.
func (v Version) String() string {
	if !v.IsSet() {
		return "unset"
	}
	if v <= 8 {
		return fmt.Sprintf("1.%d", int(v))
	}
	return strconv.Itoa(int(v))
}

// ParseVersion accepts "17", "1.8", "VERSION_17", "VERSION_1_8" and
// "JavaVersion.VERSION_17". Patch components ("17.0.2") are ignored.
func ParseVersion(raw string) (Version, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "JavaVersion.")
	if rest, ok := strings.CutPrefix(s, "VERSION_"); ok {
		s = strings.ReplaceAll(rest, "_", ".")
	}
	if s == "" {
		return 0, fmt.Errorf("invalid java version %q", raw)
	}

	parts := strings.Split(s, ".")
	major := parts[0]
	if major == "1" && len(parts) > 1 {
		major = parts[1]
	}
	n, err := strconv.Atoi(major)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid java version %q", raw)
	}
	return Version(n), nil
}

// VersionFromCty converts an HCL value (either `17` or `"1.8"`) into a
// Version.
func VersionFromCty(val cty.Value) (Version, error) {
	if val.IsNull() {
		return 0, fmt.Errorf("java version must not be null")
	}
	if !val.IsKnown() {
		return 0, fmt.Errorf("java version must be known during configuration")
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to a java version: %w", val.Type().FriendlyName(), err)
	}
	return ParseVersion(str.AsString())
}
