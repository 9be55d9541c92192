package matcher

import "github.com/leafx/procurement-service/internal/catalog"

// categoryRule maps description keywords to catalog categories. Rules are
// evaluated in order; the first rule with any keyword hit wins.
type categoryRule struct {
	Keywords   []string
	Categories []string
}

func categoryRules() []categoryRule {
	return []categoryRule{
		{Keywords: []string{"paper", "folder", "notebook"}, Categories: []string{"office_supplies"}},
		{Keywords: []string{"towel"}, Categories: []string{"janitorial"}},
		{Keywords: []string{"pen"}, Categories: []string{"office_supplies"}},
		{Keywords: []string{"cleaner", "cleaning", "solution"}, Categories: []string{"janitorial"}},
		{Keywords: []string{"ethernet", "cat6", "network cable"}, Categories: []string{"it_hardware"}},
		{Keywords: []string{"thermal paste", "thermal"}, Categories: []string{"it_hardware"}},
		{Keywords: []string{"label"}, Categories: []string{"it_supplies"}},
		{Keywords: []string{"wrist", "anti static", "esd"}, Categories: []string{"it_hardware"}},
	}
}

// syntheticRule maps description keywords to a synthesized standard/eco
// product pair for common items the catalog does not carry. Rules are
// evaluated in order; the first keyword hit wins.
type syntheticRule struct {
	Keywords []string
	Products []catalog.Product
}

func syntheticRules() []syntheticRule {
	return []syntheticRule{
		{
			Keywords: []string{"business card", "card"},
			Products: []catalog.Product{
				{SKU: "CARD-STD-16PT", Name: "Business Cards 16pt Standard", Price: 0.12, Category: "printing", Certs: []string{}, RecycledPct: 0, CO2ePerUnit: 0.05, LeadTimeDays: 3, MinimumOrderQty: 500},
				{SKU: "CARD-RCY-16PT", Name: "Business Cards 16pt Recycled", Price: 0.15, Category: "printing", Certs: []string{"FSC Recycled", "Soy-based Ink"}, RecycledPct: 100, CO2ePerUnit: 0.03, LeadTimeDays: 5, MinimumOrderQty: 500},
			},
		},
		{
			Keywords: []string{"banner", "display"},
			Products: []catalog.Product{
				{SKU: "BANNER-STD-33X79", Name: "Banner Stand 33x79 Standard", Price: 95.00, Category: "marketing", Certs: []string{}, RecycledPct: 0, CO2ePerUnit: 2.50, LeadTimeDays: 7, MinimumOrderQty: 1},
				{SKU: "BANNER-ECO-33X79", Name: "Banner Stand 33x79 Eco-Fabric", Price: 115.00, Category: "marketing", Certs: []string{"OEKO-TEX", "Recycled Content"}, RecycledPct: 60, CO2ePerUnit: 1.80, LeadTimeDays: 10, MinimumOrderQty: 1},
			},
		},
		{
			Keywords: []string{"notebook", "note"},
			Products: []catalog.Product{
				{SKU: "NOTE-STD-SPIRAL", Name: "Spiral Notebook Standard", Price: 3.50, Category: "office_supplies", Certs: []string{}, RecycledPct: 0, CO2ePerUnit: 0.45, LeadTimeDays: 2, MinimumOrderQty: 25},
				{SKU: "NOTE-RCY-SPIRAL", Name: "Spiral Notebook Recycled Paper", Price: 4.20, Category: "office_supplies", Certs: []string{"FSC Recycled", "Post-Consumer"}, RecycledPct: 80, CO2ePerUnit: 0.30, LeadTimeDays: 3, MinimumOrderQty: 25},
			},
		},
		{
			Keywords: []string{"sticky", "post-it"},
			Products: []catalog.Product{
				{SKU: "STICKY-STD-ASST", Name: "Sticky Notes Assorted Colors", Price: 8.50, Category: "office_supplies", Certs: []string{}, RecycledPct: 0, CO2ePerUnit: 0.15, LeadTimeDays: 1, MinimumOrderQty: 12},
				{SKU: "STICKY-RCY-ASST", Name: "Sticky Notes Recycled Paper", Price: 9.75, Category: "office_supplies", Certs: []string{"Recycled Content"}, RecycledPct: 30, CO2ePerUnit: 0.12, LeadTimeDays: 2, MinimumOrderQty: 12},
			},
		},
		{
			Keywords: []string{"usb", "flash drive"},
			Products: []catalog.Product{
				{SKU: "USB-STD-32GB", Name: "USB Flash Drive 32GB Standard", Price: 12.00, Category: "electronics", Certs: []string{}, RecycledPct: 0, CO2ePerUnit: 1.20, LeadTimeDays: 3, MinimumOrderQty: 10},
				{SKU: "USB-ECO-32GB", Name: "USB Flash Drive 32GB Bamboo Case", Price: 18.00, Category: "electronics", Certs: []string{"Sustainable Materials"}, RecycledPct: 45, CO2ePerUnit: 0.85, LeadTimeDays: 7, MinimumOrderQty: 10},
			},
		},
		{
			Keywords: []string{"poster tube", "tube"},
			Products: []catalog.Product{
				{SKU: "TUBE-STD-37IN", Name: "Poster Tube 37 inch Standard", Price: 6.50, Category: "packaging", Certs: []string{}, RecycledPct: 0, CO2ePerUnit: 0.35, LeadTimeDays: 2, MinimumOrderQty: 10},
				{SKU: "TUBE-RCY-37IN", Name: "Poster Tube 37 inch Recycled", Price: 7.25, Category: "packaging", Certs: []string{"Recycled Content"}, RecycledPct: 90, CO2ePerUnit: 0.22, LeadTimeDays: 3, MinimumOrderQty: 10},
			},
		},
		{
			Keywords: []string{"welcome", "handbook", "folder"},
			Products: []catalog.Product{
				{SKU: "FOLDER-STD-LETTER", Name: "Presentation Folder Standard", Price: 1.25, Category: "office_supplies", Certs: []string{}, RecycledPct: 0, CO2ePerUnit: 0.15, LeadTimeDays: 3, MinimumOrderQty: 50},
				{SKU: "FOLDER-RCY-LETTER", Name: "Presentation Folder Recycled", Price: 1.45, Category: "office_supplies", Certs: []string{"FSC Recycled"}, RecycledPct: 75, CO2ePerUnit: 0.08, LeadTimeDays: 5, MinimumOrderQty: 50},
			},
		},
		{
			Keywords: []string{"name badge", "lanyard", "badge"},
			Products: []catalog.Product{
				{SKU: "BADGE-STD-PLASTIC", Name: "Name Badge Plastic Standard", Price: 0.85, Category: "office_supplies", Certs: []string{}, RecycledPct: 0, CO2ePerUnit: 0.25, LeadTimeDays: 2, MinimumOrderQty: 25},
				{SKU: "BADGE-ECO-BAMBOO", Name: "Name Badge Eco-Bamboo", Price: 1.15, Category: "office_supplies", Certs: []string{"Sustainable Materials"}, RecycledPct: 0, CO2ePerUnit: 0.12, LeadTimeDays: 7, MinimumOrderQty: 25},
			},
		},
		{
			Keywords: []string{"water", "bottle"},
			Products: []catalog.Product{
				{SKU: "BOTTLE-STD-500ML", Name: "Water Bottle 500ml Standard", Price: 3.50, Category: "office_supplies", Certs: []string{}, RecycledPct: 0, CO2ePerUnit: 1.80, LeadTimeDays: 5, MinimumOrderQty: 12},
				{SKU: "BOTTLE-ECO-500ML", Name: "Water Bottle 500ml Recycled Steel", Price: 8.50, Category: "office_supplies", Certs: []string{"Recycled Content", "BPA-Free"}, RecycledPct: 85, CO2ePerUnit: 0.95, LeadTimeDays: 10, MinimumOrderQty: 12},
			},
		},
		{
			Keywords: []string{"desk organizer", "organizer"},
			Products: []catalog.Product{
				{SKU: "ORG-STD-PLASTIC", Name: "Desk Organizer Plastic", Price: 12.00, Category: "office_supplies", Certs: []string{}, RecycledPct: 0, CO2ePerUnit: 2.10, LeadTimeDays: 3, MinimumOrderQty: 6},
				{SKU: "ORG-ECO-BAMBOO", Name: "Desk Organizer Bamboo", Price: 18.00, Category: "office_supplies", Certs: []string{"Sustainable Materials", "FSC Certified"}, RecycledPct: 0, CO2ePerUnit: 0.85, LeadTimeDays: 12, MinimumOrderQty: 6},
			},
		},
		{
			Keywords: []string{"binder", "training material"},
			Products: []catalog.Product{
				{SKU: "BINDER-STD-3IN", Name: "3-Ring Binder Standard", Price: 4.50, Category: "office_supplies", Certs: []string{}, RecycledPct: 0, CO2ePerUnit: 0.95, LeadTimeDays: 2, MinimumOrderQty: 12},
				{SKU: "BINDER-RCY-3IN", Name: "3-Ring Binder Recycled", Price: 5.25, Category: "office_supplies", Certs: []string{"Post-Consumer Recycled"}, RecycledPct: 90, CO2ePerUnit: 0.45, LeadTimeDays: 5, MinimumOrderQty: 12},
			},
		},
	}
}

// genericTiers synthesizes the last-resort alternative set: three tiers of
// recycled content parameterized by the original description.
func genericTiers(desc string) []catalog.Product {
	return []catalog.Product{
		{SKU: "GEN-STD-OFFICE", Name: desc + " standard", Price: 5.00, Category: "office_supplies", Certs: []string{}, RecycledPct: 0, CO2ePerUnit: 1.20, LeadTimeDays: 3, MinimumOrderQty: 10},
		{SKU: "GEN-RCY-40", Name: desc + " partial recycled", Price: 5.60, Category: "office_supplies", Certs: []string{"Recycled Content"}, RecycledPct: 40, CO2ePerUnit: 0.95, LeadTimeDays: 5, MinimumOrderQty: 10},
		{SKU: "GEN-RCY-80", Name: desc + " high recycled", Price: 6.10, Category: "office_supplies", Certs: []string{"Recycled Content", "Low Carbon"}, RecycledPct: 80, CO2ePerUnit: 0.70, LeadTimeDays: 6, MinimumOrderQty: 10},
	}
}

// referenceValues holds the price/carbon baseline an alternative is
// compared against when the reference is not a catalog product.
type referenceValues struct {
	SKU         string
	Price       float64
	CO2ePerUnit float64
}

// referenceRule maps description keywords to the inferred original/standard
// product. CatalogSKU entries resolve against the live snapshot; Literal
// entries carry inline baselines for synthetic categories.
type referenceRule struct {
	Keywords   []string
	CatalogSKU string
	Literal    *referenceValues
}

func referenceRules() []referenceRule {
	return []referenceRule{
		{Keywords: []string{"paper", "folder"}, CatalogSKU: "PAPER-STD-80"},
		{Keywords: []string{"towel"}, CatalogSKU: "TOWEL-STD-2P"},
		{Keywords: []string{"pen"}, CatalogSKU: "PEN-STD-BLK"},
		{Keywords: []string{"cleaner", "cleaning"}, CatalogSKU: "CLEAN-STD-ALL"},
		{Keywords: []string{"business card", "card"}, Literal: &referenceValues{SKU: "CARD-STD-16PT", Price: 0.12, CO2ePerUnit: 0.05}},
		{Keywords: []string{"banner", "display"}, Literal: &referenceValues{SKU: "BANNER-STD-33X79", Price: 95.00, CO2ePerUnit: 2.50}},
		{Keywords: []string{"notebook", "note"}, Literal: &referenceValues{SKU: "NOTE-STD-SPIRAL", Price: 3.50, CO2ePerUnit: 0.45}},
		{Keywords: []string{"sticky", "post-it"}, Literal: &referenceValues{SKU: "STICKY-STD-ASST", Price: 8.50, CO2ePerUnit: 0.15}},
		{Keywords: []string{"usb", "flash drive"}, Literal: &referenceValues{SKU: "USB-STD-32GB", Price: 12.00, CO2ePerUnit: 1.20}},
		{Keywords: []string{"poster tube", "tube"}, Literal: &referenceValues{SKU: "TUBE-STD-37IN", Price: 6.50, CO2ePerUnit: 0.35}},
		{Keywords: []string{"badge", "lanyard"}, Literal: &referenceValues{SKU: "BADGE-STD-PLASTIC", Price: 0.85, CO2ePerUnit: 0.25}},
		{Keywords: []string{"water", "bottle"}, Literal: &referenceValues{SKU: "BOTTLE-STD-500ML", Price: 3.50, CO2ePerUnit: 1.80}},
		{Keywords: []string{"organizer"}, Literal: &referenceValues{SKU: "ORG-STD-PLASTIC", Price: 12.00, CO2ePerUnit: 2.10}},
		{Keywords: []string{"binder"}, Literal: &referenceValues{SKU: "BINDER-STD-3IN", Price: 4.50, CO2ePerUnit: 0.95}},
	}
}
