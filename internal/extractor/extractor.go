// Package extractor turns raw procurement document text into normalized
// line items using an ordered table of regex pattern matchers. Extraction
// is availability-over-precision: it always produces at least two items and
// never fails outward.
package extractor

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LineItem is a normalized procurement request line. Transient: produced
// here and consumed immediately by the matcher.
type LineItem struct {
	Desc string `json:"desc"`
	Qty  int    `json:"qty"`
	Unit string `json:"unit"`
}

// Extraction source labels reported alongside results.
const (
	SourceDynamic         = "Dynamic Content Extraction"
	SourceOfficeInferred  = "Office Supplies (Inferred)"
	SourceGeneralInferred = "General Supplies (Inferred)"
	SourceErrorFallback   = "Error Fallback"
)

// Result is the outcome of an extraction pass.
type Result struct {
	LineItems     []LineItem
	ExtractedFrom string
}

// Extractor parses document text into line items.
type Extractor struct {
	patterns []PatternMatcher
	logger   zerolog.Logger
}

// New creates an extractor with the standard pattern table.
func New() *Extractor {
	return &Extractor{
		patterns: Patterns(),
		logger:   log.With().Str("component", "extractor").Logger(),
	}
}

// Extract parses text line by line. Each pattern is tried against each
// non-blank line and every successful match contributes an item; duplicates
// (same desc/qty/unit) are dropped, first-seen order preserved. When
// nothing matches, content sniffing supplies two inferred items, and any
// internal failure degrades to a fixed generic pair: the result is never
// empty and extraction never returns an error.
func (e *Extractor) Extract(text string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("Extraction failed, using fallback items")
			result = errorFallback()
			extractionFallbacks.WithLabelValues("error").Inc()
		}
	}()

	var items []LineItem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, p := range e.patterns {
			if item, ok := p.Match(line); ok {
				items = append(items, item)
				patternHits.WithLabelValues(p.Name).Inc()
			}
		}
	}

	items = dedupe(items)

	if len(items) == 0 {
		return e.inferFromContent(text)
	}

	e.logger.Debug().Int("items", len(items)).Msg("Extracted line items")
	itemsExtracted.Observe(float64(len(items)))

	return Result{LineItems: items, ExtractedFrom: SourceDynamic}
}

// dedupe removes duplicate items by composite (desc, qty, unit) key,
// preserving first-seen order.
func dedupe(items []LineItem) []LineItem {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		key := fmt.Sprintf("%s-%d-%s", item.Desc, item.Qty, item.Unit)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// inferFromContent sniffs the text for office-supply vocabulary and emits a
// canned pair of items so downstream stages always have input to work with.
func (e *Extractor) inferFromContent(text string) Result {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "paper") || strings.Contains(lower, "office") {
		e.logger.Debug().Msg("No pattern matches, inferring office supplies")
		extractionFallbacks.WithLabelValues("office_inferred").Inc()
		return Result{
			LineItems: []LineItem{
				{Desc: "office paper", Qty: 100, Unit: "ream"},
				{Desc: "writing pens", Qty: 50, Unit: "box"},
			},
			ExtractedFrom: SourceOfficeInferred,
		}
	}

	e.logger.Debug().Msg("No pattern matches, inferring general supplies")
	extractionFallbacks.WithLabelValues("general_inferred").Inc()
	return Result{
		LineItems:     genericItems(),
		ExtractedFrom: SourceGeneralInferred,
	}
}

func errorFallback() Result {
	return Result{
		LineItems:     genericItems(),
		ExtractedFrom: SourceErrorFallback,
	}
}

func genericItems() []LineItem {
	return []LineItem{
		{Desc: "general office supplies", Qty: 50, Unit: "units"},
		{Desc: "miscellaneous items", Qty: 25, Unit: "pieces"},
	}
}
