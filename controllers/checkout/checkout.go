package checkoutControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sonmartinn/125SaleIphone-FE/cart"
	"github.com/sonmartinn/125SaleIphone-FE/checkout"
)

type CheckoutInput struct {
	Shipping      checkout.ShippingInfo `json:"shipping"`
	PaymentMethod string                `json:"payment_method" binding:"required"`
}

// PlaceOrder runs one checkout attempt. The cart is cleared only when the
// reconciler reports success; every failure response leaves it intact so the
// user can resubmit.
func PlaceOrder(m *cart.Manager, orders checkout.OrderClient, mailer checkout.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := checkout.Identity{
			ID:    c.GetString("user_id"),
			Email: c.GetString("email"),
			Name:  c.GetString("name"),
			Token: c.GetString("token"),
		}

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		method, ok := checkout.ParsePaymentMethod(input.PaymentMethod)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment method: " + input.PaymentMethod})
			return
		}

		r := checkout.NewReconciler(orders, mailer, func(userID string) {
			log.Printf("checkout: session expired for user %s, client must re-authenticate", userID)
		})

		outcome, err := r.Checkout(c.Request.Context(), m.ForUser(user.ID), user, input.Shipping, method)
		if err != nil {
			respondCheckoutError(c, err)
			return
		}

		c.JSON(http.StatusOK, outcome)
	}
}

// respondCheckoutError maps the checkout error taxonomy onto HTTP. Business
// rejections carry the server's message verbatim; transport problems get a
// generic message so infra noise is never shown as a validation failure.
func respondCheckoutError(c *gin.Context, err error) {
	var verr *checkout.ValidationError
	var rej *checkout.BusinessRejection
	var terr *checkout.TransportError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason})
	case errors.Is(err, checkout.ErrAuthExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again", "code": "auth_expired"})
	case errors.As(err, &rej):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": rej.Message})
	case errors.As(err, &terr):
		log.Printf("checkout: transport failure: %v", terr)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not reach the order service, please try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
