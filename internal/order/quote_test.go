package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSummarize tests the quote summary phrasing.
func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		po   PurchaseOrder
		want string
	}{
		{
			name: "savings with co2e reduction",
			po: PurchaseOrder{
				TotalCO2eSavings: 2.5,
				TotalCostSavings: 12.0,
				EtaDays:          4,
			},
			want: "Draft order ready. Sustainable alternatives cut ~25% CO2e with $12 savings; ETA 4 days. Quote ready to review.",
		},
		{
			name: "additional cost",
			po: PurchaseOrder{
				TotalCO2eSavings: 1.0,
				TotalCostSavings: -7.25,
				EtaDays:          6,
			},
			want: "Draft order ready. Sustainable alternatives cut ~10% CO2e with $7 additional cost; ETA 6 days. Quote ready to review.",
		},
		{
			name: "no co2e savings omits the reduction clause",
			po: PurchaseOrder{
				TotalCO2eSavings: 0,
				TotalCostSavings: 3.0,
				EtaDays:          2,
			},
			want: "Draft order ready. with $3 savings; ETA 2 days. Quote ready to review.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.po))
		})
	}
}

// TestUniqueCerts verifies dedup with first-seen order.
func TestUniqueCerts(t *testing.T) {
	items := []LineItem{
		{Certs: []string{"FSC Recycled", "EU Ecolabel"}},
		{Certs: []string{"EU Ecolabel", "Green Seal"}},
		{Certs: []string{}},
	}

	assert.Equal(t, []string{"FSC Recycled", "EU Ecolabel", "Green Seal"}, UniqueCerts(items))
	assert.Equal(t, []string{}, UniqueCerts(nil))
}

// TestEmitQuote tests the quote projection of an assembled order.
func TestEmitQuote(t *testing.T) {
	po := PurchaseOrder{
		POID: "PO-1234-Ab9z",
		Items: []LineItem{
			{SKU: "PAPER-RCY-100", Certs: []string{"FSC Recycled"}},
		},
		Subtotal:            74.90,
		EtaDays:             4,
		TotalCO2eSavings:    14.0,
		TotalCostSavings:    5.0,
		SustainabilityScore: 77,
	}

	quote := EmitQuote(po.POID, po, "/api/quotes/PO-1234-Ab9z.json")

	assert.Equal(t, "PO-1234-Ab9z", quote.POID)
	assert.Equal(t, "/api/quotes/PO-1234-Ab9z.json", quote.FileURL)
	assert.False(t, quote.GeneratedAt.IsZero())
	require.NotEmpty(t, quote.Summary)

	assert.Equal(t, "14.00 kg CO2e saved", quote.Highlights.CO2eReduction)
	assert.Equal(t, "$5.00 saved", quote.Highlights.CostImpact)
	assert.Equal(t, []string{"FSC Recycled"}, quote.Highlights.Certifications)
	assert.Equal(t, "77/100", quote.Highlights.SustainabilityScore)
}

// TestCostImpactPhrasing covers the saved/additional split.
func TestCostImpactPhrasing(t *testing.T) {
	assert.Equal(t, "$3.50 saved", costImpact(3.5))
	assert.Equal(t, "$0.00 saved", costImpact(0))
	assert.Equal(t, "$3.50 additional", costImpact(-3.5))
}
