// Package checkout drives order submission: it validates the cart and
// shipping form, builds the order payload with freshly resolved prices,
// calls the shop API, and clears the cart only once the order is a
// confirmed fact on the server.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/sonmartinn/125SaleIphone-FE/cart"
	"github.com/sonmartinn/125SaleIphone-FE/models"
	"github.com/sonmartinn/125SaleIphone-FE/pricing"
)

type Phase string

const (
	PhaseIdle                 Phase = "idle"
	PhaseValidating           Phase = "validating"
	PhaseSubmitting           Phase = "submitting"
	PhaseAwaitingConfirmation Phase = "awaiting_confirmation"
	PhaseSucceeded            Phase = "succeeded"
	PhaseFailed               Phase = "failed"
)

// ShippingInfo is the checkout form. It is handed in at submission time and
// never persisted here.
type ShippingInfo struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Note     string `json:"note"`
}

// Identity is the authenticated customer on whose behalf the order is
// placed. Token is forwarded to the shop API.
type Identity struct {
	ID    string
	Email string
	Name  string
	Token string
}

type OutcomeKind string

const (
	// OutcomeConfirmed: the API returned an order id; show the
	// confirmation page.
	OutcomeConfirmed OutcomeKind = "confirmed"
	// OutcomeRedirect: the API returned a payment URL; the UI must
	// navigate to the external gateway. The cart is still cleared.
	OutcomeRedirect OutcomeKind = "redirect"
)

type Outcome struct {
	Kind       OutcomeKind `json:"kind"`
	OrderID    string      `json:"order_id,omitempty"`
	PaymentURL string      `json:"payment_url,omitempty"`
}

// OrderClient creates orders against the shop API.
type OrderClient interface {
	CreateOrder(ctx context.Context, token string, req models.CheckoutRequest) (models.CheckoutResult, error)
}

// Mailer sends the best-effort confirmation. A failing Mailer never fails a
// checkout.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, msg models.OrderConfirmation) error
}

// Reconciler runs one checkout attempt to a terminal phase. Build a fresh
// one per submission; Phase is readable afterwards.
type Reconciler struct {
	orders     OrderClient
	mailer     Mailer
	clearCreds func(userID string)
	phase      Phase
}

// NewReconciler wires the reconciler. mailer may be nil (no confirmation
// mail); clearCreds may be nil and is invoked when the session has expired.
func NewReconciler(orders OrderClient, mailer Mailer, clearCreds func(userID string)) *Reconciler {
	return &Reconciler{orders: orders, mailer: mailer, clearCreds: clearCreds, phase: PhaseIdle}
}

func (r *Reconciler) Phase() Phase { return r.phase }

// Checkout validates, submits, and finishes in PhaseSucceeded or
// PhaseFailed. Every failure path leaves the cart untouched; only the
// success paths clear it, and only after the API has confirmed the order.
func (r *Reconciler) Checkout(ctx context.Context, store *cart.Store, user Identity, ship ShippingInfo, method models.PaymentMethod) (Outcome, error) {
	r.phase = PhaseValidating

	lines := store.Items()
	if err := validate(lines, ship, method); err != nil {
		r.phase = PhaseFailed
		return Outcome{}, err
	}

	r.phase = PhaseSubmitting
	req := buildRequest(lines, user, ship, method)

	r.phase = PhaseAwaitingConfirmation
	result, err := r.orders.CreateOrder(ctx, user.Token, req)
	if err != nil {
		r.phase = PhaseFailed
		if errors.Is(err, ErrAuthExpired) && r.clearCreds != nil {
			r.clearCreds(user.ID)
		}
		return Outcome{}, err
	}

	// The order is now the durable fact. The confirmation mail is advisory:
	// send it before reporting success, but never let it change the outcome.
	if r.mailer != nil {
		msg := models.OrderConfirmation{
			Email:       user.Email,
			OrderID:     result.OrderID,
			TotalAmount: req.TotalAmount,
			Items:       req.Items,
		}
		if err := r.mailer.SendOrderConfirmation(ctx, msg); err != nil {
			log.Printf("checkout: confirmation mail for order %s failed: %v", result.OrderID, err)
		}
	}

	store.Clear()
	r.phase = PhaseSucceeded

	if result.PaymentURL != "" {
		return Outcome{Kind: OutcomeRedirect, OrderID: result.OrderID, PaymentURL: result.PaymentURL}, nil
	}
	return Outcome{Kind: OutcomeConfirmed, OrderID: result.OrderID}, nil
}

func validate(lines []cart.Line, ship ShippingInfo, method models.PaymentMethod) error {
	if len(lines) == 0 {
		return &ValidationError{Reason: "cart is empty"}
	}
	required := []struct{ field, value string }{
		{"full_name", ship.FullName},
		{"phone", ship.Phone},
		{"address", ship.Address},
		{"city", ship.City},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Reason: "missing required field: " + f.field}
		}
	}
	switch method {
	case models.PaymentMethodCOD, models.PaymentMethodBank, models.PaymentMethodWallet:
		return nil
	default:
		return &ValidationError{Reason: fmt.Sprintf("unknown payment method %q", method)}
	}
}

func buildRequest(lines []cart.Line, user Identity, ship ShippingInfo, method models.PaymentMethod) models.CheckoutRequest {
	items := make([]models.OrderLine, 0, len(lines))
	var total float64
	for _, line := range lines {
		unit := pricing.Resolve(line.Product, line.VariantKey).UnitPrice
		items = append(items, models.OrderLine{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			VariantKey:  line.VariantKey,
			Quantity:    line.Quantity,
			UnitPrice:   unit,
		})
		total += unit * float64(line.Quantity)
	}
	return models.CheckoutRequest{
		CustomerID:      user.ID,
		Email:           user.Email,
		RecipientName:   ship.FullName,
		ShippingAddress: FormatAddress(ship),
		Phone:           ship.Phone,
		PaymentMethod:   method,
		TotalAmount:     total,
		Items:           items,
		IdempotencyKey:  uuid.NewString(),
	}
}

// FormatAddress renders the shipping form as the single address string the
// order contract expects: "address, city" with the note in parentheses.
func FormatAddress(ship ShippingInfo) string {
	addr := ship.Address + ", " + ship.City
	if strings.TrimSpace(ship.Note) != "" {
		addr += " (" + ship.Note + ")"
	}
	return addr
}

// ParsePaymentMethod maps a form value onto the recognized set.
func ParsePaymentMethod(s string) (models.PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cod", "cash", "cash-on-delivery":
		return models.PaymentMethodCOD, true
	case "bank", "bank-transfer", "banking":
		return models.PaymentMethodBank, true
	case "wallet", "mobile-wallet", "momo":
		return models.PaymentMethodWallet, true
	default:
		return "", false
	}
}
