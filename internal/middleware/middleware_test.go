package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/storefront/internal/middleware"
	"github.com/vangoframework/storefront/internal/uistate"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	line := buf.String()
	assert.Contains(t, line, `"msg":"request"`)
	assert.Contains(t, line, `"path":"/teapot"`)
	assert.Contains(t, line, `"status":418`)
	assert.Contains(t, line, `"size":15`)
	assert.Contains(t, line, `"request_id"`)
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		r.ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestUIState_LoadsCookie(t *testing.T) {
	store, err := uistate.NewStore(testSecret, false)
	require.NoError(t, err)

	saved := uistate.New()
	saved.ToggleWishlist(12)

	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(rec, saved))

	var got *uistate.State
	handler := middleware.UIState(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.GetUIState(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, saved.VisitorID, got.VisitorID)
	assert.True(t, got.IsWishlisted(12))
}

func TestUIState_FreshStateWithoutCookie(t *testing.T) {
	store, err := uistate.NewStore(testSecret, false)
	require.NoError(t, err)

	var got *uistate.State
	handler := middleware.UIState(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.GetUIState(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	require.NotNil(t, got)
	assert.NotEqual(t, uuid.Nil, got.VisitorID)
	assert.Empty(t, got.Wishlist)
}

func TestGetUIState_EmptyContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	state := middleware.GetUIState(req.Context())
	assert.NotNil(t, state)
}
