package catalog

// ValidCategories returns the list of supported product category slugs
func ValidCategories() []string {
	return []string{
		"office_supplies",
		"janitorial",
		"it_hardware",
		"it_supplies",
		"printing",
		"marketing",
		"electronics",
		"packaging",
	}
}

// IsValidCategory checks if a category slug is valid
func IsValidCategory(category string) bool {
	valid := make(map[string]bool, len(ValidCategories()))
	for _, c := range ValidCategories() {
		valid[c] = true
	}
	return valid[category]
}
