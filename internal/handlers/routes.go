package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/leafx/procurement-service/internal/catalog"
	"github.com/leafx/procurement-service/internal/extractor"
	"github.com/leafx/procurement-service/internal/matcher"
	"github.com/leafx/procurement-service/internal/order"
	"github.com/leafx/procurement-service/internal/pricing"
	"github.com/leafx/procurement-service/internal/storage"
)

// Pipeline bundles the procurement pipeline stages the handlers serve.
type Pipeline struct {
	Snapshot  *catalog.Snapshot
	Extractor *extractor.Extractor
	Matcher   *matcher.Matcher
	Resolver  *pricing.Resolver
	Assembler *order.Assembler
	Archive   storage.Archive
	QuoteURL  string
}

// NewPipeline wires the pipeline stages over one catalog snapshot.
func NewPipeline(snapshot *catalog.Snapshot, archive storage.Archive, quoteURL string) *Pipeline {
	resolver := pricing.New(snapshot)
	return &Pipeline{
		Snapshot:  snapshot,
		Extractor: extractor.New(),
		Matcher:   matcher.New(snapshot),
		Resolver:  resolver,
		Assembler: order.New(snapshot, resolver),
		Archive:   archive,
		QuoteURL:  quoteURL,
	}
}

// RegisterProcurementRoutes registers the procurement pipeline routes with
// the Gin router group.
func RegisterProcurementRoutes(r *gin.RouterGroup, p *Pipeline) {
	extract := NewExtractHandler(p.Extractor)
	alternatives := NewAlternativesHandler(p.Matcher)
	stock := NewStockHandler(p.Resolver)
	orders := NewOrdersHandler(p.Assembler)
	quotes := NewQuotesHandler(p.Archive, p.QuoteURL)

	r.POST("/procurement/extract", extract.Extract)
	r.POST("/procurement/alternatives", alternatives.FindAlternatives)
	r.GET("/procurement/stock", stock.CheckStock)
	r.POST("/procurement/orders", orders.CreateOrder)
	r.POST("/procurement/quotes", quotes.GenerateQuote)
	r.GET("/quotes", quotes.ListQuotes)
	r.GET("/quotes/:key", quotes.GetQuote)
}

// RegisterCatalogRoutes registers catalog browsing routes with the Gin
// router group.
func RegisterCatalogRoutes(r *gin.RouterGroup, snapshot *catalog.Snapshot) {
	handler := NewCatalogHandler(snapshot)

	r.GET("/catalog/products", handler.ListProducts)
	r.GET("/catalog/categories", handler.ListCategories)
}
