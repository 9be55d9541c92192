package extractor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// patternHits tracks successful line matches per pattern.
	patternHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "extractor_pattern_hits_total",
		Help: "Total number of line matches by pattern",
	}, []string{"pattern"})

	// extractionFallbacks tracks how often extraction fell back to inferred items.
	extractionFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "extractor_fallbacks_total",
		Help: "Total number of extractions that used fallback items by reason",
	}, []string{"reason"})

	// itemsExtracted tracks the distribution of items per extraction.
	itemsExtracted = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "extractor_items_per_document",
		Help:    "Number of unique line items extracted per document",
		Buckets: []float64{1, 2, 5, 10, 20, 50},
	})
)
