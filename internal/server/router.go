// Package server wires the storefront's routes and middleware.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vangoframework/storefront/internal/handlers"
	"github.com/vangoframework/storefront/internal/middleware"
	"github.com/vangoframework/storefront/internal/static"
	"github.com/vangoframework/storefront/internal/uistate"
)

// NewRouter builds the storefront router.
func NewRouter(h *handlers.Handlers, state *uistate.Store, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	// Health check
	r.Get("/health", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.UIState(state))

		r.Get("/", h.Home)
		r.Post("/cart/{id}", h.AddToCart)
		r.Post("/wishlist/{id}", h.ToggleWishlist)
		r.Post("/buy/{id}", h.BuyNow)
		r.Post("/theme", h.ToggleTheme)
	})

	r.NotFound(h.NotFound)

	return r
}
