package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/storefront/internal/catalog"
)

const productsJSON = `[
	{"id":1,"title":"Fjallraven Backpack","price":109.95,"description":"Your perfect pack","category":"men's clothing","image":"https://example.com/1.jpg","rating":{"rate":3.9,"count":120}},
	{"id":2,"title":"Slim Fit T-Shirt","price":22.3,"description":"Slim-fitting style","category":"men's clothing","image":"https://example.com/2.jpg","rating":{"rate":4.1,"count":259}}
]`

func testAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productsJSON))
	})
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"title":"Fjallraven Backpack","price":109.95,"category":"men's clothing","rating":{"rate":3.9,"count":120}}`))
	})
	mux.HandleFunc("/products/404", func(w http.ResponseWriter, r *http.Request) {
		// The public API answers unknown ids with 200 and an empty body.
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/products/405", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null\n"))
	})
	mux.HandleFunc("/products/500", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_Products(t *testing.T) {
	server := testAPI(t)
	client := catalog.NewClient(server.URL+"/", time.Second)

	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Fjallraven Backpack", products[0].Title)
	assert.Equal(t, 109.95, products[0].Price)
	assert.Equal(t, "men's clothing", products[0].Category)
	assert.Equal(t, 3.9, products[0].Rating.Rate)
	assert.Equal(t, 120, products[0].Rating.Count)
	assert.Equal(t, "Slim Fit T-Shirt", products[1].Title)
}

func TestClient_Product(t *testing.T) {
	server := testAPI(t)
	client := catalog.NewClient(server.URL, time.Second)

	product, err := client.Product(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Fjallraven Backpack", product.Title)
}

func TestClient_ProductNotFound(t *testing.T) {
	server := testAPI(t)
	client := catalog.NewClient(server.URL, time.Second)

	_, err := client.Product(context.Background(), 404)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	_, err = client.Product(context.Background(), 405)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	// Unregistered paths hit the mux 404 handler.
	_, err = client.Product(context.Background(), 77)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestClient_StatusError(t *testing.T) {
	server := testAPI(t)
	client := catalog.NewClient(server.URL, time.Second)

	_, err := client.Product(context.Background(), 500)
	require.Error(t, err)

	var statusErr *catalog.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "boom")
}

func TestClient_Timeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer slow.Close()

	client := catalog.NewClient(slow.URL, 20*time.Millisecond)

	_, err := client.Products(context.Background())
	assert.Error(t, err)
}

func TestClient_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, time.Second)

	_, err := client.Products(context.Background())
	assert.ErrorContains(t, err, "decode products")
}
