package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vangoframework/storefront/internal/catalog"
	"github.com/vangoframework/storefront/internal/middleware"
	"github.com/vangoframework/storefront/internal/templates/pages"
)

// Home renders the storefront: the product list is fetched, filtered by the
// q parameter and paginated by the page parameter.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := searchQuery(r.URL.Query().Get("q"))
	page := pageNumber(r.URL.Query().Get("page"))

	products, err := h.catalog.Products(ctx)
	if err != nil {
		// The grid falls back to its empty state.
		h.logger.Error("failed to fetch products", "error", err)
		products = nil
	}

	filtered := catalog.Filter(products, query)
	pg := catalog.Paginate(len(filtered), page, h.pageSize())

	state := middleware.GetUIState(ctx)
	toast := state.TakeFlash()
	if toast != nil {
		if err := h.state.Save(w, state); err != nil {
			h.logger.Error("failed to save ui state", "error", err)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	view := pages.StorefrontView{
		Query:    query,
		Products: filtered,
		Page:     pg,
		State:    state,
		Toast:    toast,
	}
	if err := pages.Storefront(view).Render(ctx, w); err != nil {
		h.logger.Error("failed to render storefront", "error", err)
	}
}

// searchQuery treats a whitespace-only query as no query.
func searchQuery(q string) string {
	if strings.TrimSpace(q) == "" {
		return ""
	}
	return q
}

// pageNumber parses a 1-based page number, defaulting to 1.
func pageNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
