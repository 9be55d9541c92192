package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafx/procurement-service/internal/catalog"
)

func testResolver(t *testing.T) *Resolver {
	t.Helper()

	products := []catalog.Product{
		{SKU: "PAPER-STD-80", Name: "Standard Copy Paper 80gsm", Price: 6.99, Category: "office_supplies", LeadTimeDays: 3, MinimumOrderQty: 50},
		{SKU: "NOTE-RCY-A5", Name: "Recycled Notebooks A5", Price: 8.25, Category: "office_supplies", LeadTimeDays: 4},
	}
	inventory := []catalog.InventoryRecord{
		{SKU: "PAPER-STD-80", OnHand: 1500},
	}

	return New(catalog.NewSnapshot(products, inventory, catalog.DefaultSnapshotOptions()))
}

// TestCheckStockStandardTier tests pricing below the MOQ threshold.
func TestCheckStockStandardTier(t *testing.T) {
	r := testResolver(t)

	check, err := r.CheckStockAndPrice("PAPER-STD-80", 10)
	require.NoError(t, err)

	assert.Equal(t, TierStandard, check.PriceTier)
	assert.False(t, check.BulkDiscountApplied)
	assert.InDelta(t, 6.99, check.UnitPrice, 0.001)
	assert.InDelta(t, 69.90, check.TotalPrice, 0.001)
	assert.Equal(t, 1500, check.OnHand)
	assert.True(t, check.Available)
	assert.Equal(t, 3, check.EtaDays)
}

// TestCheckStockBulkTier tests the flat discount at or above the MOQ.
func TestCheckStockBulkTier(t *testing.T) {
	r := testResolver(t)

	check, err := r.CheckStockAndPrice("PAPER-STD-80", 60)
	require.NoError(t, err)

	assert.Equal(t, TierBulk, check.PriceTier)
	assert.True(t, check.BulkDiscountApplied)
	assert.InDelta(t, 6.29, check.UnitPrice, 0.001)
	assert.InDelta(t, 377.40, check.TotalPrice, 0.001)
}

// TestCheckStockBulkAtExactMOQ verifies the boundary is inclusive.
func TestCheckStockBulkAtExactMOQ(t *testing.T) {
	r := testResolver(t)

	check, err := r.CheckStockAndPrice("PAPER-STD-80", 50)
	require.NoError(t, err)
	assert.Equal(t, TierBulk, check.PriceTier)

	check, err = r.CheckStockAndPrice("PAPER-STD-80", 49)
	require.NoError(t, err)
	assert.Equal(t, TierStandard, check.PriceTier)
}

// TestCheckStockDefaults verifies the default MOQ and on-hand figures apply
// to products with no explicit MOQ or inventory record.
func TestCheckStockDefaults(t *testing.T) {
	r := testResolver(t)

	check, err := r.CheckStockAndPrice("NOTE-RCY-A5", 49)
	require.NoError(t, err)
	assert.Equal(t, TierStandard, check.PriceTier)
	assert.Equal(t, 1000, check.OnHand)
	assert.True(t, check.Available)

	check, err = r.CheckStockAndPrice("NOTE-RCY-A5", 50)
	require.NoError(t, err)
	assert.Equal(t, TierBulk, check.PriceTier)
}

// TestCheckStockUnknownSKU verifies the sentinel error for missing products.
func TestCheckStockUnknownSKU(t *testing.T) {
	r := testResolver(t)

	_, err := r.CheckStockAndPrice("NO-SUCH-SKU", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

// TestCheckStockInvalidQuantity rejects non-positive quantities.
func TestCheckStockInvalidQuantity(t *testing.T) {
	r := testResolver(t)

	_, err := r.CheckStockAndPrice("PAPER-STD-80", 0)
	assert.Error(t, err)

	_, err = r.CheckStockAndPrice("PAPER-STD-80", -5)
	assert.Error(t, err)
}

// TestCheckStockInsufficientInventory reports unavailable without failing.
func TestCheckStockInsufficientInventory(t *testing.T) {
	r := testResolver(t)

	check, err := r.CheckStockAndPrice("PAPER-STD-80", 2000)
	require.NoError(t, err)
	assert.False(t, check.Available)
	assert.Equal(t, 1500, check.OnHand)
	assert.Equal(t, 2000, check.RequestedQty)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 6.29, Round2(6.291))
	assert.Equal(t, 6.3, Round2(6.296))
	assert.Equal(t, -1.4, Round2(-1.4000001))
	assert.Equal(t, 0.0, Round2(0))
}
