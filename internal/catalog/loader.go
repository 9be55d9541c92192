package catalog

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Load reads the product catalog and inventory table from disk and builds
// an immutable snapshot. Both files are loaded concurrently; either failing
// fails the load, since the pipeline cannot run without reference data.
func Load(ctx context.Context, productsPath, inventoryPath string, opts SnapshotOptions) (*Snapshot, error) {
	var (
		products  []Product
		inventory []InventoryRecord
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = LoadProducts(productsPath)
		return err
	})
	g.Go(func() error {
		var err error
		inventory, err = LoadInventory(inventoryPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Str("component", "catalog").
		Int("products", len(products)).
		Int("inventory_records", len(inventory)).
		Msg("Reference data loaded")

	return NewSnapshot(products, inventory, opts), nil
}

// LoadProducts reads the marketplace JSON file.
func LoadProducts(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product catalog %s: %w", path, err)
	}

	var file MarketplaceFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse product catalog %s: %w", path, err)
	}

	for i, p := range file.Products {
		if p.SKU == "" {
			return nil, fmt.Errorf("product catalog %s: product at index %d has no sku", path, i)
		}
		if p.Category != "" && !IsValidCategory(p.Category) {
			log.Warn().
				Str("component", "catalog").
				Str("sku", p.SKU).
				Str("category", p.Category).
				Msg("Unknown product category")
		}
	}

	return file.Products, nil
}

// LoadInventory reads the inventory CSV table. The first row is a header;
// columns are mapped by header name so column order does not matter.
func LoadInventory(path string) ([]InventoryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory table %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse inventory table %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	skuCol, onHandCol := -1, -1
	for i, h := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "sku":
			skuCol = i
		case "on_hand", "onhand", "qty":
			onHandCol = i
		}
	}
	if skuCol < 0 || onHandCol < 0 {
		return nil, fmt.Errorf("inventory table %s: missing sku/on_hand columns", path)
	}

	records := make([]InventoryRecord, 0, len(rows)-1)
	for lineNo, row := range rows[1:] {
		if len(row) <= skuCol || len(row) <= onHandCol {
			continue
		}
		sku := strings.TrimSpace(row[skuCol])
		if sku == "" {
			continue
		}
		onHand, err := strconv.Atoi(strings.TrimSpace(row[onHandCol]))
		if err != nil || onHand < 0 {
			log.Warn().
				Str("component", "catalog").
				Int("line", lineNo+2).
				Str("sku", sku).
				Msg("Skipping inventory row with invalid on_hand")
			continue
		}
		records = append(records, InventoryRecord{SKU: sku, OnHand: onHand})
	}

	return records, nil
}
