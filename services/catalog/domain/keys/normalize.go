// Package keys derives canonical grouping keys from free-text item titles.
// Two titles with the same key are treated as the same item type by the
// catalog rollup. All functions are pure; Normalize is idempotent.
package keys

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes to NFD, drops combining marks, and recomposes,
// so "échelle" becomes "echelle".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize maps a free-text title to its canonical grouping key:
// lowercase, accent-free, punctuation collapsed to spaces, whitespace
// collapsed, with a naive French singularization. Empty or whitespace-only
// input yields "".
func Normalize(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	if s == "" {
		return ""
	}

	s, _, _ = transform.String(stripAccents, s)

	// Apostrophes separate words ("appareil d'époque"), so they become spaces
	// rather than disappearing.
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\'' || r == '’' || r == '‘':
			return ' '
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '/', r == '-':
			return r
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, s)

	s = strings.Join(strings.Fields(s), " ")

	return singularize(s)
}

// singularize drops a trailing "s" from words of length >= 4. Words ending in
// "aux" are irregular plurals ("chevaux", "travaux") and are left intact —
// stripping them would produce garbage like "chevau".
func singularize(s string) string {
	if len(s) >= 4 && strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "aux") {
		return s[:len(s)-1]
	}
	return s
}
