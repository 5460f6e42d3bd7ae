package utils

import (
	"strings"
	"unicode"
)

// NormalizeCategorySlug converts a hyphenated category slug into the
// title-case form categories are stored in: "web-dev" becomes "Web Dev".
// Only the first rune of each hyphen-separated word is upper-cased; the
// rest of the word is kept as-is. The result is matched case-insensitively
// against the stored category string, so the capitalization mainly aids
// log readability.
func NormalizeCategorySlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = unicode.ToUpper(r[0])
			words[i] = string(r)
		}
	}
	return strings.Join(words, " ")
}
