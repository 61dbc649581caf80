// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	nonWord    = regexp.MustCompile(`[^a-z0-9_-]+`)
	hyphens    = regexp.MustCompile(`--+`)

	// đ has no combining-mark decomposition, so it is mapped by hand.
	letters = strings.NewReplacer("đ", "d")
)

// Make lowercases and trims name, strips diacritics, turns whitespace into
// hyphens, drops everything outside [a-z0-9_-] and collapses hyphen runs.
func Make(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}

	s = letters.Replace(s)
	s = whitespace.ReplaceAllString(s, "-")
	s = nonWord.ReplaceAllString(s, "")
	s = hyphens.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
