package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sonmartinn/125SaleIphone-FE/catalog"
)

// GET /user/products
func GetProducts(products *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.Products(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /user/products/:id
func GetProductByID(products *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := products.Product(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
