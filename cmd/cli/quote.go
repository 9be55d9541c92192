package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leafx/procurement-service/internal/matcher"
	"github.com/leafx/procurement-service/internal/order"
	"github.com/leafx/procurement-service/internal/pricing"
)

var quoteOutput string

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <file>",
	Short: "Run the full pipeline and produce a draft quote",
	Long: `Run the complete procurement pipeline against a local document: extract
line items, match each one to sustainable alternatives, select the top
alternative per item, assemble a draft purchase order, and render its quote.
Items with no sustainable alternative are skipped.`,
	Example: `  procurement-service quote ./request.txt
  procurement-service quote ./request.txt --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVar(&quoteOutput, "output", "table", "Output format: table or json")
}

func runQuote(cmd *cobra.Command, args []string) error {
	snapshot, err := loadSnapshot()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	result, err := extractFile(args[0])
	if err != nil {
		return err
	}

	matches, err := matcher.New(snapshot).FindAlternatives(result.LineItems)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	selected := selectTopAlternatives(matches)
	if len(selected) == 0 {
		return fmt.Errorf("no sustainable alternatives found for any line item")
	}

	assembler := order.New(snapshot, pricing.New(snapshot))
	po, err := assembler.CreateOrder(selected)
	if err != nil {
		return fmt.Errorf("order assembly failed: %w", err)
	}

	quote := order.EmitQuote(po.POID, po, "")

	switch strings.ToLower(quoteOutput) {
	case "json":
		return outputJSON(map[string]any{"order": po, "quote": quote})
	case "table":
		outputQuoteTable(po, quote)
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", quoteOutput)
	}
}

// selectTopAlternatives picks the first alternative for each matched item,
// carrying its deltas and certifications into the order selection.
func selectTopAlternatives(matches []matcher.AlternativeResult) []order.SelectedItem {
	selected := make([]order.SelectedItem, 0, len(matches))
	for _, m := range matches {
		if len(m.Alternatives) == 0 {
			continue
		}
		alt := m.Alternatives[0]
		priceDelta := alt.PriceDelta
		co2eDelta := alt.CO2eDelta
		selected = append(selected, order.SelectedItem{
			SKU:        alt.AltSKU,
			Name:       alt.Name,
			Qty:        m.Original.Qty,
			Certs:      alt.Certs,
			PriceDelta: &priceDelta,
			CO2eDelta:  &co2eDelta,
		})
	}
	return selected
}

func outputQuoteTable(po order.PurchaseOrder, quote order.Quote) {
	fmt.Printf("\nPurchase Order %s\n", po.POID)
	fmt.Println(strings.Repeat("-", 60))
	for _, item := range po.Items {
		fmt.Printf("%-16s %-30s %4d x $%.2f = $%.2f\n",
			item.SKU, item.Name, item.Qty, item.UnitPrice, item.TotalPrice)
	}
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Subtotal: $%.2f  ETA: %d days  Score: %d/100\n",
		po.Subtotal, po.EtaDays, po.SustainabilityScore)
	fmt.Printf("CO2e savings: %.2f kg  Cost impact: %s\n",
		po.TotalCO2eSavings, quote.Highlights.CostImpact)
	fmt.Printf("\n%s\n", quote.Summary)
}
