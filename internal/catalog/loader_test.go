package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const testMarketplace = `{
  "products": [
    {"sku": "PAPER-STD-80", "name": "Standard Copy Paper", "price": 6.99, "category": "office_supplies", "certs": [], "recycled_pct": 0, "co2e_per_unit": 2.3, "lead_time_days": 3, "moq": 50},
    {"sku": "PAPER-RCY-100", "name": "Recycled Copy Paper", "price": 7.49, "category": "office_supplies", "certs": ["FSC Recycled"], "recycled_pct": 100, "co2e_per_unit": 0.9, "lead_time_days": 4}
  ]
}`

const testInventory = `sku,on_hand
PAPER-STD-80,1500
PAPER-RCY-100,750
BAD-ROW,not-a-number
,500
`

// TestLoad tests the concurrent catalog and inventory load.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	productsPath := writeTestFile(t, dir, "marketplace.json", testMarketplace)
	inventoryPath := writeTestFile(t, dir, "inventory.csv", testInventory)

	snapshot, err := Load(context.Background(), productsPath, inventoryPath, DefaultSnapshotOptions())
	require.NoError(t, err)

	assert.Len(t, snapshot.Products(), 2)

	p, ok := snapshot.ProductBySKU("PAPER-STD-80")
	require.True(t, ok)
	assert.Equal(t, "Standard Copy Paper", p.Name)
	assert.Equal(t, 50, snapshot.MOQ(p))

	// Invalid inventory rows are skipped; valid ones resolve.
	assert.Equal(t, 1500, snapshot.OnHand("PAPER-STD-80"))
	assert.Equal(t, 750, snapshot.OnHand("PAPER-RCY-100"))
	// Unknown SKUs fall back to the default on-hand.
	assert.Equal(t, 1000, snapshot.OnHand("UNKNOWN-SKU"))
}

// TestLoadMissingProductsFile fails the whole load.
func TestLoadMissingProductsFile(t *testing.T) {
	dir := t.TempDir()
	inventoryPath := writeTestFile(t, dir, "inventory.csv", testInventory)

	_, err := Load(context.Background(), filepath.Join(dir, "missing.json"), inventoryPath, DefaultSnapshotOptions())
	assert.Error(t, err)
}

// TestLoadProductsRejectsMissingSKU verifies catalog validation.
func TestLoadProductsRejectsMissingSKU(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "marketplace.json", `{"products": [{"name": "No SKU", "price": 1.0}]}`)

	_, err := LoadProducts(path)
	assert.Error(t, err)
}

// TestLoadInventoryHeaderMapping verifies columns are mapped by name.
func TestLoadInventoryHeaderMapping(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "inventory.csv", "on_hand,sku\n42,PAPER-STD-80\n")

	records, err := LoadInventory(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, InventoryRecord{SKU: "PAPER-STD-80", OnHand: 42}, records[0])
}

// TestLoadInventoryMissingColumns fails with a clear error.
func TestLoadInventoryMissingColumns(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "inventory.csv", "sku,quantity\nPAPER-STD-80,10\n")

	_, err := LoadInventory(path)
	assert.Error(t, err)
}

// TestSnapshotCategoryLookups tests the category indexes.
func TestSnapshotCategoryLookups(t *testing.T) {
	products := []Product{
		{SKU: "A", Category: "office_supplies"},
		{SKU: "B", Category: "office_supplies"},
		{SKU: "C", Category: "janitorial"},
	}
	s := NewSnapshot(products, nil, DefaultSnapshotOptions())

	assert.Len(t, s.ProductsByCategory("office_supplies"), 2)
	assert.Len(t, s.ProductsByCategory("janitorial"), 1)
	assert.Empty(t, s.ProductsByCategory("packaging"))
	assert.Len(t, s.ProductsByCategories([]string{"office_supplies", "janitorial"}), 3)
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range ValidCategories() {
		assert.True(t, IsValidCategory(c))
	}
	assert.False(t, IsValidCategory("groceries"))
	assert.False(t, IsValidCategory(""))
}
