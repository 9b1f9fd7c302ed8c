package middleware

import (
	"context"
	"net/http"

	"github.com/vangoframework/storefront/internal/uistate"
)

type contextKey string

// UIStateContextKey is the context key for the visitor's UI state.
const UIStateContextKey contextKey = "uistate"

// UIState returns a middleware that loads the visitor's UI state into the
// request context. Visitors without a valid cookie get fresh state.
func UIState(store *uistate.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), UIStateContextKey, store.Load(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUIState retrieves the UI state from context, or fresh state if none was loaded.
func GetUIState(ctx context.Context) *uistate.State {
	state, ok := ctx.Value(UIStateContextKey).(*uistate.State)
	if !ok || state == nil {
		return uistate.New()
	}
	return state
}
