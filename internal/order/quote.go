package order

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// SustainabilityHighlights restates the order's aggregate sustainability
// figures for the quote presentation.
type SustainabilityHighlights struct {
	CO2eReduction       string   `json:"co2e_reduction"`
	CostImpact          string   `json:"cost_impact"`
	Certifications      []string `json:"certifications"`
	SustainabilityScore string   `json:"sustainability_score"`
}

// Quote is a presentation projection of a purchase order. It has no
// lifecycle of its own.
type Quote struct {
	POID        string                   `json:"po_id"`
	GeneratedAt time.Time                `json:"generated_at"`
	Summary     string                   `json:"summary"`
	FileURL     string                   `json:"file_url"`
	Highlights  SustainabilityHighlights `json:"sustainability_highlights"`
}

// EmitQuote renders a quote from an assembled purchase order. fileURL
// points at the archived quote document.
func EmitQuote(poID string, po PurchaseOrder, fileURL string) Quote {
	return Quote{
		POID:        poID,
		GeneratedAt: time.Now().UTC(),
		Summary:     Summarize(po),
		FileURL:     fileURL,
		Highlights: SustainabilityHighlights{
			CO2eReduction:       fmt.Sprintf("%.2f kg CO2e saved", po.TotalCO2eSavings),
			CostImpact:          costImpact(po.TotalCostSavings),
			Certifications:      UniqueCerts(po.Items),
			SustainabilityScore: fmt.Sprintf("%d/100", po.SustainabilityScore),
		},
	}
}

// Summarize produces the human-readable order summary. The CO2 reduction
// percentage is a deliberately rough savings/10*100 estimate, not a
// lifecycle figure.
func Summarize(po PurchaseOrder) string {
	var sb strings.Builder
	sb.WriteString("Draft order ready. ")

	if po.TotalCO2eSavings > 0 {
		reductionPercent := math.Round(po.TotalCO2eSavings / 10 * 100)
		fmt.Fprintf(&sb, "Sustainable alternatives cut ~%.0f%% CO2e ", reductionPercent)
	}

	if po.TotalCostSavings >= 0 {
		fmt.Fprintf(&sb, "with $%.0f savings; ", math.Abs(po.TotalCostSavings))
	} else {
		fmt.Fprintf(&sb, "with $%.0f additional cost; ", math.Abs(po.TotalCostSavings))
	}

	fmt.Fprintf(&sb, "ETA %d days. Quote ready to review.", po.EtaDays)
	return sb.String()
}

// UniqueCerts aggregates the distinct certifications across order items,
// preserving first-seen order.
func UniqueCerts(items []LineItem) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, item := range items {
		for _, cert := range item.Certs {
			if !seen[cert] {
				seen[cert] = true
				out = append(out, cert)
			}
		}
	}
	return out
}

func costImpact(costSavings float64) string {
	if costSavings >= 0 {
		return fmt.Sprintf("$%.2f saved", math.Abs(costSavings))
	}
	return fmt.Sprintf("$%.2f additional", math.Abs(costSavings))
}
