package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/vangoframework/storefront/internal/catalog"
	"github.com/vangoframework/storefront/internal/config"
	"github.com/vangoframework/storefront/internal/templates/pages"
	"github.com/vangoframework/storefront/internal/uistate"
)

// Catalog is the product source the handlers read from.
type Catalog interface {
	Products(ctx context.Context) ([]catalog.Product, error)
	Product(ctx context.Context, id int) (*catalog.Product, error)
}

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config  *config.Config
	catalog Catalog
	state   *uistate.Store
	logger  *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(cfg *config.Config, products Catalog, state *uistate.Store, logger *slog.Logger) *Handlers {
	return &Handlers{
		config:  cfg,
		catalog: products,
		state:   state,
		logger:  logger,
	}
}

// Health reports that the server is up.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// NotFound renders the 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	templ.Handler(pages.NotFound(), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
}

func (h *Handlers) pageSize() int {
	if h.config == nil || h.config.PageSize < 1 {
		return catalog.DefaultPageSize
	}
	return h.config.PageSize
}
