package models

import "time"

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// OrderLine is one line of an order submission. UnitPrice is resolved fresh
// at submission time, never copied from a cached cart total.
type OrderLine struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	VariantKey  string  `json:"variant_key,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// CheckoutRequest is the payload sent to the shop API's order-creation
// endpoint. IdempotencyKey is client-generated per submission attempt.
type CheckoutRequest struct {
	CustomerID      string        `json:"user_id"`
	Email           string        `json:"email"`
	RecipientName   string        `json:"recipient_name"`
	ShippingAddress string        `json:"shipping_address"`
	Phone           string        `json:"phone"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	TotalAmount     float64       `json:"total_amount"`
	Items           []OrderLine   `json:"items"`
	IdempotencyKey  string        `json:"idempotency_key"`
}

// CheckoutResult is the decoded success response. Exactly one of OrderID and
// PaymentURL is expected: an order id means a standard confirmation, a
// payment URL means the gateway-handoff variant.
type CheckoutResult struct {
	OrderID    string
	PaymentURL string
}

// OrderConfirmation is the best-effort mail payload sent after an order is
// accepted.
type OrderConfirmation struct {
	Email       string      `json:"email"`
	OrderID     string      `json:"order_id"`
	TotalAmount float64     `json:"total_amount"`
	Items       []OrderLine `json:"items"`
}

// Order is a past order as returned by the shop API's history endpoint.
type Order struct {
	ID            FlexString  `json:"id"`
	TotalAmount   FlexFloat   `json:"total_amount"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderLine `json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
}
