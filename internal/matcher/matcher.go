// Package matcher maps extracted line items to sustainable catalog
// alternatives. Matching is an ordered, data-driven rule lookup: keyword
// rules select catalog categories, synthetic product pairs cover common
// items the catalog lacks, and a generic recycled-tier set is the final
// fallback, so every item gets at least one candidate.
package matcher

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/leafx/procurement-service/internal/catalog"
	"github.com/leafx/procurement-service/internal/extractor"
)

// sustainableCO2eThreshold admits low-carbon products with no recycled
// content into the alternative set.
const sustainableCO2eThreshold = 1.5

// Matcher finds sustainable alternatives for extracted line items.
type Matcher struct {
	snapshot   *catalog.Snapshot
	categories []categoryRule
	synthetics []syntheticRule
	references []referenceRule
	logger     zerolog.Logger
}

// New creates a matcher over an immutable catalog snapshot.
func New(snapshot *catalog.Snapshot) *Matcher {
	return &Matcher{
		snapshot:   snapshot,
		categories: categoryRules(),
		synthetics: syntheticRules(),
		references: referenceRules(),
		logger:     log.With().Str("component", "matcher").Logger(),
	}
}

// FindAlternatives matches every line item. A malformed item (empty
// description) fails the whole request with ErrInvalidInput rather than
// silently matching nothing.
func (m *Matcher) FindAlternatives(items []extractor.LineItem) ([]AlternativeResult, error) {
	for i, item := range items {
		if strings.TrimSpace(item.Desc) == "" {
			return nil, ErrInvalidInput{Field: "desc", Reason: "cannot be empty", Index: i}
		}
	}

	results := make([]AlternativeResult, 0, len(items))
	for _, item := range items {
		results = append(results, AlternativeResult{
			Original:     item,
			Alternatives: m.FindAlternativesFor(item),
		})
	}
	return results, nil
}

// FindAlternativesFor returns the sustainable alternatives for one item.
func (m *Matcher) FindAlternativesFor(item extractor.LineItem) []AlternativeOffer {
	desc := strings.ToLower(item.Desc)

	candidates := m.catalogCandidates(desc)
	if len(candidates) == 0 {
		candidates = m.syntheticCandidates(item, desc)
	}

	ref := m.findReferenceProduct(desc)

	offers := make([]AlternativeOffer, 0, len(candidates))
	for _, p := range candidates {
		if p.RecycledPct <= 0 && p.CO2ePerUnit >= sustainableCO2eThreshold {
			continue
		}
		offers = append(offers, AlternativeOffer{
			AltSKU:       p.SKU,
			Name:         p.Name,
			Price:        p.Price,
			Certs:        p.Certs,
			RecycledPct:  p.RecycledPct,
			CO2ePerUnit:  p.CO2ePerUnit,
			LeadTimeDays: p.LeadTimeDays,
			PriceDelta:   computeDelta(p.Price, ref, func(r *referenceValues) float64 { return r.Price }),
			CO2eDelta:    computeDelta(p.CO2ePerUnit, ref, func(r *referenceValues) float64 { return r.CO2ePerUnit }),
		})
	}

	m.logger.Debug().
		Str("desc", desc).
		Int("candidates", len(candidates)).
		Int("sustainable", len(offers)).
		Msg("Matched alternatives")
	alternativesReturned.Observe(float64(len(offers)))

	return offers
}

// catalogCandidates selects real catalog products: the first category rule
// with a keyword hit wins, then the set is narrowed to products whose name
// contains the item's first word when that narrowing leaves anything.
func (m *Matcher) catalogCandidates(desc string) []catalog.Product {
	var matched []*catalog.Product
	for _, rule := range m.categories {
		if containsAny(desc, rule.Keywords) {
			matched = m.snapshot.ProductsByCategories(rule.Categories)
			break
		}
	}
	if len(matched) == 0 {
		return nil
	}

	if firstWord := strings.SplitN(desc, " ", 2)[0]; firstWord != "" {
		narrowed := make([]*catalog.Product, 0, len(matched))
		for _, p := range matched {
			if strings.Contains(strings.ToLower(p.Name), firstWord) {
				narrowed = append(narrowed, p)
			}
		}
		if len(narrowed) > 0 {
			matched = narrowed
		}
	}

	out := make([]catalog.Product, len(matched))
	for i, p := range matched {
		out[i] = *p
	}
	return out
}

// syntheticCandidates synthesizes alternatives when no catalog category
// matched: the first synthetic rule with a keyword hit supplies a
// standard/eco pair, and the generic recycled tiers are the last resort.
func (m *Matcher) syntheticCandidates(item extractor.LineItem, desc string) []catalog.Product {
	for _, rule := range m.synthetics {
		if containsAny(desc, rule.Keywords) {
			syntheticMatches.WithLabelValues("paired").Inc()
			return rule.Products
		}
	}
	syntheticMatches.WithLabelValues("generic").Inc()
	return genericTiers(item.Desc)
}

// findReferenceProduct infers the original/standard product the buyer
// would otherwise purchase. Returns nil when nothing matches, in which
// case deltas report zero with no improvement claimed.
func (m *Matcher) findReferenceProduct(desc string) *referenceValues {
	for _, rule := range m.references {
		if !containsAny(desc, rule.Keywords) {
			continue
		}
		if rule.Literal != nil {
			return rule.Literal
		}
		if p, ok := m.snapshot.ProductBySKU(rule.CatalogSKU); ok {
			return &referenceValues{SKU: p.SKU, Price: p.Price, CO2ePerUnit: p.CO2ePerUnit}
		}
		return nil
	}
	return nil
}

// computeDelta compares an alternative's value against the reference on
// one axis. A missing reference or a zero baseline yields zero deltas.
func computeDelta(altValue float64, ref *referenceValues, axis func(*referenceValues) float64) Delta {
	if ref == nil {
		return Delta{}
	}
	origValue := axis(ref)
	if origValue == 0 {
		return Delta{}
	}
	absolute := altValue - origValue
	return Delta{
		Absolute:      absolute,
		Percentage:    (absolute / origValue) * 100,
		IsImprovement: absolute < 0,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
