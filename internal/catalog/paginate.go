package catalog

// DefaultPageSize is the number of products shown per grid page.
const DefaultPageSize = 6

// Page describes one window over a list of n items.
type Page struct {
	Current    int
	PerPage    int
	Total      int // number of items
	TotalPages int
	Start      int // inclusive index into the item list
	End        int // exclusive index into the item list
}

// Paginate computes the window for page over total items.
// Out of range pages are clamped to the first or last page.
func Paginate(total, page, perPage int) Page {
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}

	totalPages := (total + perPage - 1) / perPage

	last := totalPages
	if last < 1 {
		last = 1
	}
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	if start > end {
		start = end
	}

	return Page{
		Current:    page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Current > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Current < p.TotalPages }

// Numbers lists the page numbers 1..TotalPages.
func (p Page) Numbers() []int {
	numbers := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		numbers = append(numbers, i)
	}
	return numbers
}

// Slice returns the products that fall on this page.
func (p Page) Slice(products []Product) []Product {
	if p.Start >= len(products) {
		return nil
	}
	end := p.End
	if end > len(products) {
		end = len(products)
	}
	return products[p.Start:end]
}
