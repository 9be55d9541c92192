package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// stockChecks counts stock and price resolutions by price tier.
var stockChecks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pricing_stock_checks_total",
	Help: "Total number of stock and price checks by tier",
}, []string{"tier"})
