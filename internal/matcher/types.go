package matcher

import (
	"fmt"

	"github.com/leafx/procurement-service/internal/extractor"
)

// Delta describes how an alternative compares to the inferred reference
// product on one axis (price or carbon). Percentage is relative to the
// reference value; IsImprovement means lower.
type Delta struct {
	Absolute      float64 `json:"absolute"`
	Percentage    float64 `json:"percentage"`
	IsImprovement bool    `json:"is_improvement"`
}

// AlternativeOffer is a sustainable product offered in place of an
// extracted line item, with computed deltas against the reference product.
type AlternativeOffer struct {
	AltSKU       string   `json:"alt_sku"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Certs        []string `json:"certs"`
	RecycledPct  int      `json:"recycled_pct"`
	CO2ePerUnit  float64  `json:"co2e_per_unit"`
	LeadTimeDays int      `json:"lead_time_days"`
	PriceDelta   Delta    `json:"price_delta"`
	CO2eDelta    Delta    `json:"co2e_delta"`
}

// AlternativeResult pairs a line item with its sustainable alternatives.
type AlternativeResult struct {
	Original     extractor.LineItem `json:"original"`
	Alternatives []AlternativeOffer `json:"alternatives"`
}

// ErrInvalidInput is returned when a line item in the request is malformed.
type ErrInvalidInput struct {
	Field  string
	Reason string
	Index  int
}

func (e ErrInvalidInput) Error() string {
	return fmt.Sprintf("%s: %s (item %d)", e.Field, e.Reason, e.Index)
}
