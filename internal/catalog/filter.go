package catalog

import "strings"

// Filter returns the products whose title, category or description contains
// query, ignoring case. A blank query matches everything. Order is preserved.
func Filter(products []Product, query string) []Product {
	if strings.TrimSpace(query) == "" {
		return products
	}

	q := strings.ToLower(query)
	var filtered []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
