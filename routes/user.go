package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/sonmartinn/125SaleIphone-FE/controllers/cart"
	checkoutControllers "github.com/sonmartinn/125SaleIphone-FE/controllers/checkout"
	orderControllers "github.com/sonmartinn/125SaleIphone-FE/controllers/order"
	productControllers "github.com/sonmartinn/125SaleIphone-FE/controllers/product"
	"github.com/sonmartinn/125SaleIphone-FE/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(deps.Carts))                         // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(deps.Carts, deps.Catalog))          // POST /user/cart
			cartGroup.PUT("/", cartControllers.SetCartItemQuantity(deps.Carts))                 // PUT /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Carts))        // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(deps.Carts))                    // DELETE /user/cart
			cartGroup.GET("/feed", cartControllers.CartFeedHandler(deps.Carts))                 // GET /user/cart/feed (websocket)
		}

		// ──────────────── Checkout ────────────────
		userGroup.POST("/checkout", checkoutControllers.PlaceOrder(deps.Carts, deps.Orders, deps.Mailer)) // POST /user/checkout

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(deps.Catalog))        // GET /user/products
		userGroup.GET("/products/:id", productControllers.GetProductByID(deps.Catalog)) // GET /user/products/:id

		// ──────────────── Order History ────────────────
		userGroup.GET("/orders", orderControllers.GetUserOrders(deps.Orders))           // GET /user/orders
		userGroup.GET("/orders/export", orderControllers.ExportUserOrders(deps.Orders)) // GET /user/orders/export
	}
}
