package game

import "strings"

// CheckAnswer compares a submitted answer with the stored one.
//
// Both sides are trimmed and compared case-insensitively. There is no
// partial credit: "FDAs" does not match "FDA".
func CheckAnswer(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}

// IsBlank reports whether the input has no non-whitespace content.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
