package analysis

import (
	"regexp"
	"strings"
)

var (
	htmlTagRX    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRX = regexp.MustCompile(`\s+`)
)

// Sanitize strips HTML tags and stray angle brackets, collapses whitespace
// runs to a single space and trims the result. Total and idempotent; empty
// input yields empty output.
func Sanitize(raw string) string {
	s := htmlTagRX.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = whitespaceRX.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
