package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leafx/procurement-service/internal/docparse"
	"github.com/leafx/procurement-service/internal/extractor"
)

var extractOutput string

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract line items from a procurement document",
	Long: `Extract normalized line items from a local procurement document. The file
is converted to plain text (XLSX workbooks are flattened, anything else is
treated as text) and run through the pattern-based line-item extractor.
Extraction always produces at least two items; when no pattern matches, the
items are inferred from the document's vocabulary.`,
	Example: `  procurement-service extract ./request.txt
  procurement-service extract ./order-list.xlsx --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractOutput, "output", "table", "Output format: table or json")
}

func runExtract(cmd *cobra.Command, args []string) error {
	result, err := extractFile(args[0])
	if err != nil {
		return err
	}

	switch strings.ToLower(extractOutput) {
	case "json":
		return outputJSON(result)
	case "table":
		outputExtractTable(result)
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", extractOutput)
	}
}

// extractFile converts a local file to text and extracts its line items.
func extractFile(filePath string) (extractor.Result, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return extractor.Result{}, fmt.Errorf("failed to read file: %w", err)
	}

	logger.Info().Str("file", filePath).Msgf("Read %d bytes", len(content))

	text := docparse.ToText(content, filePath)
	return extractor.New().Extract(text), nil
}

func outputExtractTable(result extractor.Result) {
	fmt.Printf("\nExtracted %d line items (%s)\n", len(result.LineItems), result.ExtractedFrom)
	fmt.Println(strings.Repeat("-", 60))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Description\tQty\tUnit\n")
	fmt.Fprintf(w, "-----------\t---\t----\n")
	for _, item := range result.LineItems {
		fmt.Fprintf(w, "%s\t%d\t%s\n", item.Desc, item.Qty, item.Unit)
	}
	w.Flush()
}

func outputJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
