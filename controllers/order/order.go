package orderControllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/sonmartinn/125SaleIphone-FE/models"
)

// HistoryClient is the slice of the order client these handlers need.
type HistoryClient interface {
	Orders(ctx context.Context, token string) ([]models.Order, error)
}

// GET /user/orders
func GetUserOrders(orders HistoryClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.Orders(c.Request.Context(), c.GetString("token"))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /user/orders/export — the user's order history as a spreadsheet.
func ExportUserOrders(orders HistoryClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.Orders(c.Request.Context(), c.GetString("token"))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"OrderID", "Status", "PaymentMethod", "TotalAmount", "Items", "CreatedAt"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range list {
			row := sheet.AddRow()
			row.AddCell().SetValue(string(o.ID))
			row.AddCell().SetValue(o.Status)
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(float64(o.TotalAmount))
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
