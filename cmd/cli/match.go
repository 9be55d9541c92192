package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leafx/procurement-service/internal/matcher"
)

var matchOutput string

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <file>",
	Short: "Match a document's line items to sustainable alternatives",
	Long: `Extract line items from a local procurement document and match each one
against the product catalog for sustainable alternatives. Requires the
catalog data files configured under catalog.products_path and
catalog.inventory_path.`,
	Example: `  procurement-service match ./request.txt
  procurement-service match ./order-list.xlsx --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&matchOutput, "output", "table", "Output format: table or json")
}

func runMatch(cmd *cobra.Command, args []string) error {
	snapshot, err := loadSnapshot()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info().Int("products", len(snapshot.Products())).Msg("Catalog loaded")

	result, err := extractFile(args[0])
	if err != nil {
		return err
	}

	matches, err := matcher.New(snapshot).FindAlternatives(result.LineItems)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	switch strings.ToLower(matchOutput) {
	case "json":
		return outputJSON(matches)
	case "table":
		outputMatchTable(matches)
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", matchOutput)
	}
}

func outputMatchTable(matches []matcher.AlternativeResult) {
	for _, m := range matches {
		fmt.Printf("\n%s (%d %s)\n", m.Original.Desc, m.Original.Qty, m.Original.Unit)
		fmt.Println(strings.Repeat("-", 60))

		if len(m.Alternatives) == 0 {
			fmt.Println("No sustainable alternatives found")
			continue
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "SKU\tName\tPrice\tRecycled\tCO2e\tPrice Delta %%\n")
		for _, alt := range m.Alternatives {
			fmt.Fprintf(w, "%s\t%s\t$%.2f\t%d%%\t%.2f\t%+.1f%%\n",
				alt.AltSKU, alt.Name, alt.Price, alt.RecycledPct, alt.CO2ePerUnit, alt.PriceDelta.Percentage)
		}
		w.Flush()
	}
}
