package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductsDecodesMixedShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"IdProduct": 1, "name": "iPhone 15", "category": "phone",
			 "variants": [{"IdProductVar": "1-red", "Color": "Red", "Price": "19900000", "Stock": 4}]},
			{"id": "case-01", "name": "Silicone Case", "category": "accessory", "price": "490000"}
		]`))
	}))
	defer srv.Close()

	products, err := NewClient(srv.URL, nil).Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	require.Equal(t, "1", products[0].ID)
	require.Len(t, products[0].Variants, 1)
	require.Equal(t, 19900000.0, float64(products[0].Variants[0].Price))
	require.True(t, products[0].Variants[0].Stock.Tracked)

	require.Equal(t, "case-01", products[1].ID)
	require.Empty(t, products[1].Variants)
	require.Equal(t, 490000.0, float64(products[1].Price))
}

func TestProductByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/case-01", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "case-01", "name": "Silicone Case", "price": 490000}`))
	}))
	defer srv.Close()

	p, err := NewClient(srv.URL, nil).Product(context.Background(), "case-01")
	require.NoError(t, err)
	require.Equal(t, "Silicone Case", p.Name)
}

func TestProductNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).Product(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
