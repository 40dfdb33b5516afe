package services

import (
	"regexp"
	"strings"
)

var (
	slugStrip      = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
)

// GenerateSlug lower-cases the title, drops anything that is not an ASCII
// letter, digit or whitespace, and replaces each whitespace run with '-'.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugStrip.ReplaceAllString(slug, "")
	return slugWhitespace.ReplaceAllString(slug, "-")
}
