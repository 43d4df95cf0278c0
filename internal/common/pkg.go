package common

import "strings"

// UnknownStr is the String value of out-of-range enumerations.
const UnknownStr = "unknown"

// PackagePath turns a dotted Java package into a slash separated path.
// Returns empty string if pkg is empty.
func PackagePath(pkg string) string {
	if pkg == "" {
		return ""
	}

	return strings.ReplaceAll(pkg, ".", "/")
}
