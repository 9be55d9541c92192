// Package pricing resolves availability, tiered pricing, and lead time for
// catalog products. All figures are computed from the immutable catalog
// snapshot; nothing here performs I/O.
package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/leafx/procurement-service/internal/catalog"
)

// ErrProductNotFound is returned when a SKU is absent from the catalog.
var ErrProductNotFound = errors.New("product not found")

// Price tiers.
const (
	TierStandard = "standard"
	TierBulk     = "bulk"
)

// StockCheck is the result of a stock and price resolution. Derived, never
// stored.
type StockCheck struct {
	SKU                 string  `json:"sku"`
	Available           bool    `json:"available"`
	OnHand              int     `json:"on_hand"`
	RequestedQty        int     `json:"requested_qty"`
	PriceTier           string  `json:"price_tier"`
	UnitPrice           float64 `json:"unit_price"`
	TotalPrice          float64 `json:"total_price"`
	EtaDays             int     `json:"eta_days"`
	BulkDiscountApplied bool    `json:"bulk_discount_applied"`
}

// Resolver computes stock checks against a catalog snapshot.
type Resolver struct {
	snapshot *catalog.Snapshot
	logger   zerolog.Logger
}

// New creates a resolver over an immutable catalog snapshot.
func New(snapshot *catalog.Snapshot) *Resolver {
	return &Resolver{
		snapshot: snapshot,
		logger:   log.With().Str("component", "pricing").Logger(),
	}
}

// CheckStockAndPrice resolves availability and tiered pricing for one SKU.
// Quantities at or above the product's MOQ get the bulk tier with a flat
// discount on unit price. Unknown SKUs fail with ErrProductNotFound.
func (r *Resolver) CheckStockAndPrice(sku string, qty int) (StockCheck, error) {
	if qty <= 0 {
		return StockCheck{}, fmt.Errorf("invalid quantity %d for %s", qty, sku)
	}

	product, ok := r.snapshot.ProductBySKU(sku)
	if !ok {
		return StockCheck{}, fmt.Errorf("%w: %s", ErrProductNotFound, sku)
	}

	onHand := r.snapshot.OnHand(sku)
	tier := TierStandard
	discount := 0.0
	if qty >= r.snapshot.MOQ(product) {
		tier = TierBulk
		discount = r.snapshot.BulkDiscount()
	}

	unitPrice := Round2(product.Price * (1 - discount))
	stockChecks.WithLabelValues(tier).Inc()

	return StockCheck{
		SKU:                 sku,
		Available:           onHand >= qty,
		OnHand:              onHand,
		RequestedQty:        qty,
		PriceTier:           tier,
		UnitPrice:           unitPrice,
		TotalPrice:          Round2(unitPrice * float64(qty)),
		EtaDays:             product.LeadTimeDays,
		BulkDiscountApplied: discount > 0,
	}, nil
}

// Round2 rounds a monetary or emission figure to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
