package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sonmartinn/125SaleIphone-FE/models"
)

func checkoutReq() models.CheckoutRequest {
	return models.CheckoutRequest{
		CustomerID:      "u1",
		ShippingAddress: "1 Le Loi, Ho Chi Minh",
		Phone:           "0912345678",
		PaymentMethod:   models.PaymentMethodCOD,
		TotalAmount:     2300,
		Items:           []models.OrderLine{{ProductID: "P1", Quantity: 2, UnitPrice: 1000}},
		IdempotencyKey:  "key-1",
	}
}

func TestCreateOrderConfirmedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payment/checkout", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var got models.CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, "u1", got.CustomerID)
		require.Equal(t, "key-1", got.IdempotencyKey)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"order_id": 512, "status": "pending"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	result, err := c.CreateOrder(context.Background(), "tok", checkoutReq())
	require.NoError(t, err)
	require.Equal(t, "512", result.OrderID)
	require.Empty(t, result.PaymentURL)
}

func TestCreateOrderLegacyIDField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "abc-1"}`))
	}))
	defer srv.Close()

	result, err := NewClient(srv.URL, nil).CreateOrder(context.Background(), "tok", checkoutReq())
	require.NoError(t, err)
	require.Equal(t, "abc-1", result.OrderID)
}

func TestCreateOrderRedirectShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"payment_url": "https://pay.example/x"}`))
	}))
	defer srv.Close()

	result, err := NewClient(srv.URL, nil).CreateOrder(context.Background(), "tok", checkoutReq())
	require.NoError(t, err)
	require.Equal(t, "https://pay.example/x", result.PaymentURL)
}

func TestCreateOrderBusinessRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "Sản phẩm đã hết hàng"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).CreateOrder(context.Background(), "tok", checkoutReq())

	var rej *BusinessRejection
	require.ErrorAs(t, err, &rej)
	require.Equal(t, http.StatusUnprocessableEntity, rej.Status)
	require.Equal(t, "Sản phẩm đã hết hàng", rej.Message)
}

func TestCreateOrderRejectionWithoutMessageGetsGenericOne(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).CreateOrder(context.Background(), "tok", checkoutReq())

	var rej *BusinessRejection
	require.ErrorAs(t, err, &rej)
	require.Equal(t, "order submission failed", rej.Message)
}

func TestCreateOrderNonJSONBodyIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>502 Bad Gateway</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).CreateOrder(context.Background(), "tok", checkoutReq())

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	require.Contains(t, terr.Message, "non-JSON")
	require.Contains(t, terr.Message, "502")
}

func TestCreateOrderUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).CreateOrder(context.Background(), "expired", checkoutReq())
	require.ErrorIs(t, err, ErrAuthExpired)
}

func TestCreateOrderUnreachableHost(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", nil)
	_, err := c.CreateOrder(context.Background(), "tok", checkoutReq())

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
}

func TestOrdersHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 3, "total_amount": "2300", "status": "delivered", "items": [{"product_id": "P1", "quantity": 2, "unit_price": 1000}]}]`))
	}))
	defer srv.Close()

	orders, err := NewClient(srv.URL, nil).Orders(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, models.FlexString("3"), orders[0].ID)
	require.Equal(t, 2300.0, float64(orders[0].TotalAmount))
	require.Len(t, orders[0].Items, 1)
}
