package extractor

import (
	"regexp"
	"strconv"
)

// A PatternMatcher attempts to parse one line of document text into a
// LineItem. Matchers are pure functions so each can be tested on its own.
type PatternMatcher struct {
	Name  string
	Match func(line string) (LineItem, bool)
}

var (
	// "Office Paper - Quantity: 100 reams"
	qtySuffixRe = regexp.MustCompile(`(?i)^(.+?)\s*-\s*(?:quantity|qty):\s*(\d+)\s*(\w+)`)
	// "- Pens (50 box)"
	bulletRe = regexp.MustCompile(`(?i)^-\s*(.+?)\s*\((\d+)\s*(\w+)\)`)
	// "1. Sticky Notes - Quantity: 20 packs"
	numberedRe = regexp.MustCompile(`(?i)^\d+\.\s*(.+?)\s*-\s*(?:quantity|qty):\s*(\d+)\s*(\w+)`)
	// "Desk organizers - 12"
	bareDashRe = regexp.MustCompile(`^(.+?)\s*-\s*(\d+)\s*$`)
)

// Patterns returns the ordered table of line patterns. Every pattern is
// tried against every line; a well-formed line matches exactly one.
func Patterns() []PatternMatcher {
	return []PatternMatcher{
		{Name: "qty_suffix", Match: matchQtySuffix},
		{Name: "bullet", Match: matchBullet},
		{Name: "numbered", Match: matchNumbered},
		{Name: "bare_dash", Match: matchBareDash},
	}
}

func matchQtySuffix(line string) (LineItem, bool) {
	m := qtySuffixRe.FindStringSubmatch(line)
	if m == nil {
		return LineItem{}, false
	}
	return buildItem(m[1], m[2], m[3], 2, true)
}

func matchBullet(line string) (LineItem, bool) {
	m := bulletRe.FindStringSubmatch(line)
	if m == nil {
		return LineItem{}, false
	}
	return buildItem(m[1], m[2], m[3], 2, true)
}

func matchNumbered(line string) (LineItem, bool) {
	m := numberedRe.FindStringSubmatch(line)
	if m == nil {
		return LineItem{}, false
	}
	return buildItem(m[1], m[2], m[3], 2, true)
}

func matchBareDash(line string) (LineItem, bool) {
	m := bareDashRe.FindStringSubmatch(line)
	if m == nil {
		return LineItem{}, false
	}
	// The bare form has no unit token, so a stricter length floor keeps
	// stray "word - number" fragments out. Punctuation is preserved.
	return buildItem(m[1], m[2], "units", 3, false)
}

func buildItem(rawDesc, rawQty, unit string, minDescLen int, stripPunctuation bool) (LineItem, bool) {
	qty, err := strconv.Atoi(rawQty)
	if err != nil || qty <= 0 {
		return LineItem{}, false
	}
	if len(rawDesc) <= minDescLen {
		return LineItem{}, false
	}
	return LineItem{
		Desc: NormalizeDescription(rawDesc, stripPunctuation),
		Qty:  qty,
		Unit: unit,
	}, true
}
