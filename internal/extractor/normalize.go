package extractor

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxDescriptionLen = 50

var punctuationRe = regexp.MustCompile(`[^\w\s]`)

// RemoveDiacritics folds accented characters to their ASCII base form so
// descriptions compare and match consistently regardless of source encoding.
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// NormalizeDescription canonicalizes an extracted item description:
// diacritics folded, lowercased, optionally punctuation-stripped, whitespace
// collapsed, and truncated to 50 characters.
func NormalizeDescription(desc string, stripPunctuation bool) string {
	s := RemoveDiacritics(desc)
	s = strings.ToLower(s)
	if stripPunctuation {
		s = punctuationRe.ReplaceAllString(s, " ")
	}
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > maxDescriptionLen {
		s = strings.TrimSpace(s[:maxDescriptionLen])
	}
	return s
}
