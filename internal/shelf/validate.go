package shelf

import (
	"fmt"
	"strings"
)

// ValidateName checks that a candidate shelf name is a legal, safe directory
// component. The returned message is empty for a clean name, an error
// description when valid is false, and a non-fatal warning when valid is true.
//
// The function is advisory: interactive callers should block on warnings,
// batch classification should only log them.
func ValidateName(name string) (valid bool, message string) {
	if strings.TrimSpace(name) == "" {
		return false, "shelf name cannot be empty"
	}

	var found []string
	for _, c := range InvalidPathChars {
		if strings.ContainsRune(name, c) {
			found = append(found, string(c))
		}
	}
	if len(found) > 0 {
		return false, fmt.Sprintf("contains invalid characters: %s", strings.Join(found, ", "))
	}

	if name == "." || name == ".." {
		return false, `cannot use "." or ".." as a shelf name`
	}

	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return true, "names starting or ending with '.' may cause issues on some systems"
	}

	return true, ""
}
