package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sonmartinn/125SaleIphone-FE/cart"
	"github.com/sonmartinn/125SaleIphone-FE/catalog"
	"github.com/sonmartinn/125SaleIphone-FE/checkout"
	"github.com/sonmartinn/125SaleIphone-FE/mail"
)

// Deps carries everything the route handlers are wired with.
type Deps struct {
	Carts   *cart.Manager
	Catalog *catalog.Client
	Orders  *checkout.Client
	Mailer  *mail.Client
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupUserRoutes(r, deps)
}
