package nameutil

import "strings"

// Slugify converts a string into a filesystem/identifier-safe slug.
// It lowercases the input, replaces every character outside [a-z0-9]
// with a dash, collapses consecutive dashes, and trims leading/trailing
// dashes. Total: never fails; an all-symbol input yields "".
func Slugify(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}

	// Collapse consecutive dashes.
	result := b.String()
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}

	// Trim leading/trailing dashes.
	result = strings.Trim(result, "-")

	return result
}
