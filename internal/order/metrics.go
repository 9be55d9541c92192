package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ordersCreated counts assembled purchase orders.
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_created_total",
		Help: "Total number of purchase orders assembled",
	})

	// droppedItems counts order selections dropped for unresolvable SKUs.
	droppedItems = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_items_dropped_total",
		Help: "Total number of selected items dropped during order assembly",
	})

	// orderSubtotal tracks the distribution of order subtotals.
	orderSubtotal = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_subtotal_dollars",
		Help:    "Purchase order subtotal in dollars",
		Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000},
	})

	// sustainabilityScore tracks the distribution of order scores.
	sustainabilityScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_sustainability_score",
		Help:    "Composite sustainability score of assembled orders",
		Buckets: []float64{10, 25, 50, 75, 90, 100},
	})
)
