package utils

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugHyphens  = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL-safe slug from a display name: lowercase, every
// character outside [a-z0-9 space hyphen] removed, and each run of
// whitespace collapsed to a single hyphen. The strip happens before
// hyphenation, so "Beach & Island Getaways" becomes
// "beach-island-getaways".
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(strings.TrimSpace(s), "-")
	return s
}
