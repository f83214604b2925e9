package errs

import "strings"

// sanitize flattens multi-line values into a single line so that error
// messages stay log-friendly.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}
