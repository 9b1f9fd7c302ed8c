package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vangoframework/storefront/internal/catalog"
	"github.com/vangoframework/storefront/internal/middleware"
	"github.com/vangoframework/storefront/internal/templates/components"
	"github.com/vangoframework/storefront/internal/uistate"
)

// AddToCart logs the product and confirms with a toast. There is no cart
// behind it.
func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productParam(w, r)
	if !ok {
		return
	}

	state := middleware.GetUIState(r.Context())
	h.logger.Info("added to cart",
		"product_id", product.ID,
		"title", product.Title,
		"price", catalog.Pricing(*product).Display,
		"visitor_id", state.VisitorID,
	)

	state.Flash = &uistate.Toast{
		Title:       "Added to Cart",
		Description: fmt.Sprintf("%s has been added to your cart.", product.Title),
	}
	h.saveAndReturn(w, r, state)
}

// ToggleWishlist adds the product to the visitor's wishlist or removes it.
func (h *Handlers) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productParam(w, r)
	if !ok {
		return
	}

	state := middleware.GetUIState(r.Context())
	added := state.ToggleWishlist(product.ID)

	h.logger.Info("wishlist toggled",
		"product_id", product.ID,
		"title", product.Title,
		"wishlisted", added,
		"visitor_id", state.VisitorID,
	)

	if added {
		state.Flash = &uistate.Toast{
			Title:       "Added to Wishlist",
			Description: fmt.Sprintf("%s has been added to your wishlist.", product.Title),
		}
	} else {
		state.Flash = &uistate.Toast{
			Title:       "Removed from Wishlist",
			Description: fmt.Sprintf("%s has been removed from your wishlist.", product.Title),
		}
	}
	h.saveAndReturn(w, r, state)
}

// BuyNow only logs the product; checkout does not exist.
func (h *Handlers) BuyNow(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productParam(w, r)
	if !ok {
		return
	}

	state := middleware.GetUIState(r.Context())
	h.logger.Info("buy now",
		"product_id", product.ID,
		"title", product.Title,
		"price", catalog.Pricing(*product).Display,
		"visitor_id", state.VisitorID,
	)

	http.Redirect(w, r, returnLocation(r).URL(), http.StatusSeeOther)
}

// ToggleTheme switches the visitor between the light and dark theme.
func (h *Handlers) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetUIState(r.Context())
	state.ToggleTheme()
	h.saveAndReturn(w, r, state)
}

// productParam resolves the {id} URL parameter to a product, writing the
// error response itself when it cannot.
func (h *Handlers) productParam(w http.ResponseWriter, r *http.Request) (*catalog.Product, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return nil, false
	}

	product, err := h.catalog.Product(r.Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		h.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		h.logger.Error("failed to fetch product", "product_id", id, "error", err)
		http.Error(w, "Failed to load product", http.StatusBadGateway)
		return nil, false
	}

	return product, true
}

func (h *Handlers) saveAndReturn(w http.ResponseWriter, r *http.Request, state *uistate.State) {
	if err := h.state.Save(w, state); err != nil {
		h.logger.Error("failed to save ui state", "error", err)
	}
	http.Redirect(w, r, returnLocation(r).URL(), http.StatusSeeOther)
}

// returnLocation reads the q and page form fields posted with an action.
func returnLocation(r *http.Request) components.Location {
	return components.Location{
		Query: searchQuery(r.FormValue("q")),
		Page:  pageNumber(r.FormValue("page")),
	}
}
