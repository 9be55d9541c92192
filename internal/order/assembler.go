// Package order assembles selected sustainable alternatives into purchase
// orders and renders quote summaries. Orders are quotes: they are returned
// to the caller and never persisted or mutated afterwards.
package order

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/leafx/procurement-service/internal/catalog"
	"github.com/leafx/procurement-service/internal/matcher"
	"github.com/leafx/procurement-service/internal/pkg/cuid2"
	"github.com/leafx/procurement-service/internal/pricing"
)

// SelectedItem is one client-chosen alternative to include in an order.
// Deltas and certifications travel with the selection so aggregate savings
// can be computed without re-running the matcher.
type SelectedItem struct {
	SKU        string         `json:"sku"`
	Name       string         `json:"name"`
	Qty        int            `json:"qty"`
	Certs      []string       `json:"certs,omitempty"`
	PriceDelta *matcher.Delta `json:"price_delta,omitempty"`
	CO2eDelta  *matcher.Delta `json:"co2e_delta,omitempty"`
}

// LineItem is one resolved line of a purchase order.
type LineItem struct {
	SKU        string   `json:"sku"`
	Name       string   `json:"name"`
	Qty        int      `json:"qty"`
	UnitPrice  float64  `json:"unit_price"`
	TotalPrice float64  `json:"total_price"`
	EtaDays    int      `json:"eta_days"`
	Certs      []string `json:"certs"`
}

// PurchaseOrder is an assembled quote-stage order. Immutable once returned.
type PurchaseOrder struct {
	POID                string     `json:"po_id"`
	Items               []LineItem `json:"items"`
	Subtotal            float64    `json:"subtotal"`
	EtaDays             int        `json:"eta_days"`
	TotalCO2eSavings    float64    `json:"total_co2e_savings"`
	TotalCostSavings    float64    `json:"total_cost_savings"`
	SustainabilityScore int        `json:"sustainability_score"`
}

// Assembler builds purchase orders from selected items.
type Assembler struct {
	snapshot *catalog.Snapshot
	resolver *pricing.Resolver
	logger   zerolog.Logger
}

// New creates an assembler over the catalog snapshot and its resolver.
func New(snapshot *catalog.Snapshot, resolver *pricing.Resolver) *Assembler {
	return &Assembler{
		snapshot: snapshot,
		resolver: resolver,
		logger:   log.With().Str("component", "order").Logger(),
	}
}

// NewOrderID generates a purchase order identifier: "PO-", the last four
// digits of the millisecond timestamp, and a short random base62 suffix.
// The suffix keeps concurrent order creation collision-free; the truncated
// timestamp alone repeats every ten seconds.
func NewOrderID() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return fmt.Sprintf("PO-%s-%s", ms[len(ms)-4:], cuid2.Random(4))
}

// CreateOrder resolves each selected item and aggregates the order totals.
// Items whose SKU is not in the catalog are dropped silently; the caller
// sees a shorter item list, not a partial failure. Malformed selections
// (empty SKU, non-positive quantity) fail the whole request.
func (a *Assembler) CreateOrder(selected []SelectedItem) (PurchaseOrder, error) {
	for i, item := range selected {
		if item.SKU == "" {
			return PurchaseOrder{}, matcher.ErrInvalidInput{Field: "sku", Reason: "cannot be empty", Index: i}
		}
		if item.Qty <= 0 {
			return PurchaseOrder{}, matcher.ErrInvalidInput{Field: "qty", Reason: "must be positive", Index: i}
		}
	}

	po := PurchaseOrder{
		POID:  NewOrderID(),
		Items: make([]LineItem, 0, len(selected)),
	}

	for _, item := range selected {
		check, err := a.resolver.CheckStockAndPrice(item.SKU, item.Qty)
		if err != nil {
			a.logger.Warn().Str("sku", item.SKU).Err(err).Msg("Dropping unresolvable order item")
			droppedItems.Inc()
			continue
		}

		po.Subtotal += check.TotalPrice
		if check.EtaDays > po.EtaDays {
			po.EtaDays = check.EtaDays
		}
		if item.PriceDelta != nil {
			po.TotalCostSavings += item.PriceDelta.Absolute * float64(item.Qty)
		}
		if item.CO2eDelta != nil {
			po.TotalCO2eSavings += math.Abs(item.CO2eDelta.Absolute) * float64(item.Qty)
		}

		po.Items = append(po.Items, LineItem{
			SKU:        item.SKU,
			Name:       item.Name,
			Qty:        item.Qty,
			UnitPrice:  check.UnitPrice,
			TotalPrice: check.TotalPrice,
			EtaDays:    check.EtaDays,
			Certs:      certsOrEmpty(item.Certs),
		})
	}

	po.Subtotal = pricing.Round2(po.Subtotal)
	po.TotalCO2eSavings = pricing.Round2(po.TotalCO2eSavings)
	po.TotalCostSavings = pricing.Round2(po.TotalCostSavings)
	po.SustainabilityScore = a.sustainabilityScore(po.Items)

	a.logger.Info().
		Str("po_id", po.POID).
		Int("items", len(po.Items)).
		Float64("subtotal", po.Subtotal).
		Int("score", po.SustainabilityScore).
		Msg("Order assembled")
	ordersCreated.Inc()
	orderSubtotal.Observe(po.Subtotal)
	sustainabilityScore.Observe(float64(po.SustainabilityScore))

	return po, nil
}

// sustainabilityScore is the mean per-item composite on a 0-100 scale:
// up to 40 points for recycled content, 10 per certification capped at 30,
// and up to 30 for carbon intensity with zero credit at 2.0 kg CO2e/unit
// or above. A heuristic demo figure, not a lifecycle assessment.
func (a *Assembler) sustainabilityScore(items []LineItem) int {
	if len(items) == 0 {
		return 0
	}

	total := 0.0
	for _, item := range items {
		product, ok := a.snapshot.ProductBySKU(item.SKU)
		if !ok {
			continue
		}
		score := float64(product.RecycledPct) / 100 * 40
		score += math.Min(float64(len(product.Certs))*10, 30)
		score += math.Max(0, (2.0-product.CO2ePerUnit)/2.0*30)
		total += score
	}

	return int(math.Round(total / float64(len(items))))
}

func certsOrEmpty(certs []string) []string {
	if certs == nil {
		return []string{}
	}
	return certs
}
