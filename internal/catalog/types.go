package catalog

// Product is a single marketplace catalog entry. Products are reference
// data: loaded once at startup and never mutated.
type Product struct {
	SKU             string   `json:"sku" jsonschema:"required"`
	Name            string   `json:"name" jsonschema:"required"`
	Price           float64  `json:"price" jsonschema:"minimum=0"`
	Category        string   `json:"category"`
	Certs           []string `json:"certs"`
	RecycledPct     int      `json:"recycled_pct" jsonschema:"minimum=0,maximum=100"`
	CO2ePerUnit     float64  `json:"co2e_per_unit" jsonschema:"minimum=0"`
	LeadTimeDays    int      `json:"lead_time_days" jsonschema:"minimum=0"`
	MinimumOrderQty int      `json:"moq" jsonschema:"minimum=1"`
}

// InventoryRecord is a single on-hand count keyed by SKU.
type InventoryRecord struct {
	SKU    string `json:"sku"`
	OnHand int    `json:"on_hand"`
}

// MarketplaceFile is the on-disk shape of the product catalog.
type MarketplaceFile struct {
	Products []Product `json:"products"`
}

// Snapshot is an immutable view of the catalog and inventory tables.
// Construct via Load or NewSnapshot; reload means building a new Snapshot.
type Snapshot struct {
	products      []Product
	bySKU         map[string]*Product
	byCategory    map[string][]*Product
	onHand        map[string]int
	defaultOnHand int
	defaultMOQ    int
	bulkDiscount  float64
}

// SnapshotOptions controls snapshot defaults.
type SnapshotOptions struct {
	DefaultOnHand int     // assumed on-hand when no inventory record exists
	DefaultMOQ    int     // MOQ used when a product has none set
	BulkDiscount  float64 // flat discount applied at or above MOQ
}

// DefaultSnapshotOptions returns the stock demo-friendly defaults.
func DefaultSnapshotOptions() SnapshotOptions {
	return SnapshotOptions{
		DefaultOnHand: 1000,
		DefaultMOQ:    50,
		BulkDiscount:  0.10,
	}
}

// NewSnapshot builds an immutable snapshot from loaded reference data.
func NewSnapshot(products []Product, inventory []InventoryRecord, opts SnapshotOptions) *Snapshot {
	if opts.DefaultOnHand <= 0 {
		opts.DefaultOnHand = 1000
	}
	if opts.DefaultMOQ <= 0 {
		opts.DefaultMOQ = 50
	}
	if opts.BulkDiscount <= 0 {
		opts.BulkDiscount = 0.10
	}

	s := &Snapshot{
		products:      products,
		bySKU:         make(map[string]*Product, len(products)),
		byCategory:    make(map[string][]*Product),
		onHand:        make(map[string]int, len(inventory)),
		defaultOnHand: opts.DefaultOnHand,
		defaultMOQ:    opts.DefaultMOQ,
		bulkDiscount:  opts.BulkDiscount,
	}

	for i := range s.products {
		p := &s.products[i]
		s.bySKU[p.SKU] = p
		s.byCategory[p.Category] = append(s.byCategory[p.Category], p)
	}
	for _, rec := range inventory {
		s.onHand[rec.SKU] = rec.OnHand
	}

	return s
}

// ProductBySKU looks up a product by SKU.
func (s *Snapshot) ProductBySKU(sku string) (*Product, bool) {
	p, ok := s.bySKU[sku]
	return p, ok
}

// ProductsByCategory returns all products in the given category.
func (s *Snapshot) ProductsByCategory(category string) []*Product {
	return s.byCategory[category]
}

// ProductsByCategories returns all products whose category is in the set.
func (s *Snapshot) ProductsByCategories(categories []string) []*Product {
	var out []*Product
	for _, c := range categories {
		out = append(out, s.byCategory[c]...)
	}
	return out
}

// Products returns every catalog product.
func (s *Snapshot) Products() []Product {
	return s.products
}

// OnHand returns the inventory count for a SKU. A SKU with no inventory
// record reports the configured default so demos never block on missing
// inventory data.
func (s *Snapshot) OnHand(sku string) int {
	if n, ok := s.onHand[sku]; ok {
		return n
	}
	return s.defaultOnHand
}

// MOQ returns the product's minimum order quantity, or the default when unset.
func (s *Snapshot) MOQ(p *Product) int {
	if p.MinimumOrderQty > 0 {
		return p.MinimumOrderQty
	}
	return s.defaultMOQ
}

// BulkDiscount returns the flat discount rate applied at bulk tier.
func (s *Snapshot) BulkDiscount() float64 {
	return s.bulkDiscount
}
