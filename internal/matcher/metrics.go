package matcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// alternativesReturned tracks the distribution of sustainable
	// alternatives returned per line item.
	alternativesReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "matcher_alternatives_per_item",
		Help:    "Number of sustainable alternatives returned per line item",
		Buckets: []float64{0, 1, 2, 3, 5, 10},
	})

	// syntheticMatches counts fallbacks to synthesized product sets.
	syntheticMatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "matcher_synthetic_matches_total",
		Help: "Total number of items matched to synthesized products by kind",
	}, []string{"kind"})
)
