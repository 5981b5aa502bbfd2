package cartControllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sonmartinn/125SaleIphone-FE/cart"
	"github.com/sonmartinn/125SaleIphone-FE/catalog"
	"github.com/sonmartinn/125SaleIphone-FE/models"
)

// ProductFetcher is the slice of the catalog client the cart handlers need.
type ProductFetcher interface {
	Product(ctx context.Context, id string) (models.Product, error)
}

type CartItemInput struct {
	ProductID  string `json:"product_id" binding:"required"`
	VariantKey string `json:"variant_key"`
	Quantity   int    `json:"quantity"`
}

type cartView struct {
	Items  []cart.Line `json:"items"`
	Totals cart.Totals `json:"totals"`
}

func view(s *cart.Store) cartView {
	return cartView{Items: s.Items(), Totals: s.ComputeTotals()}
}

// GET /user/cart
func GetUserCart(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		c.JSON(http.StatusOK, view(m.ForUser(userID)))
	}
}

// POST /user/cart — add (or merge) a line. The product is fetched fresh from
// the catalog so the stored snapshot carries current prices and stock.
func AddCartItem(m *cart.Manager, products ProductFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity < 1 {
			input.Quantity = 1
		}

		product, err := products.Product(c.Request.Context(), input.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to validate product"})
			return
		}

		store := m.ForUser(userID)
		line := store.AddItem(product, input.VariantKey, input.Quantity)
		c.JSON(http.StatusCreated, gin.H{"line": line, "totals": store.ComputeTotals()})
	}
}

// PUT /user/cart — set a line's quantity; 0 removes the line.
func SetCartItemQuantity(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store := m.ForUser(userID)
		store.UpdateQuantity(input.ProductID, input.VariantKey, input.Quantity)
		c.JSON(http.StatusOK, view(store))
	}
}

// DELETE /user/cart/:product_id?variant_key=...
func DeleteCartItem(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		store := m.ForUser(userID)
		store.RemoveItem(c.Param("product_id"), c.Query("variant_key"))
		c.JSON(http.StatusOK, view(store))
	}
}

// DELETE /user/cart
func ClearUserCart(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		m.ForUser(userID).Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
