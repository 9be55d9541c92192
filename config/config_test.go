package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies defaults apply without a config file.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "./data/marketplace.json", cfg.Catalog.ProductsPath)
	assert.Equal(t, "./data/inventory.csv", cfg.Catalog.InventoryPath)
	assert.Equal(t, 1000, cfg.Catalog.DefaultOnHand)
	assert.Equal(t, 50, cfg.Catalog.DefaultMOQ)
	assert.InDelta(t, 0.10, cfg.Catalog.BulkDiscount, 0.001)
	assert.Equal(t, "./data/quotes", cfg.Quotes.StoragePath)
	assert.Equal(t, "/api/quotes", cfg.Quotes.URLPrefix)
	assert.Equal(t, "info", cfg.Logging.Level)
}

// TestLoadEnvOverrides verifies environment variables override defaults.
func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "4567")
	t.Setenv("CATALOG_PRODUCTS_PATH", "/tmp/products.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4567, cfg.Server.Port)
	assert.Equal(t, "/tmp/products.json", cfg.Catalog.ProductsPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

// TestGetReturnsLastLoaded verifies the global accessor.
func TestGetReturnsLastLoaded(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Same(t, cfg, Get())
}
