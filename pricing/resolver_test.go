package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sonmartinn/125SaleIphone-FE/models"
)

func phone() models.Product {
	return models.Product{
		ID:    "p1",
		Name:  "iPhone 15",
		Price: 19000000,
		Image: "/img/15.png",
		Variants: []models.ProductVariant{
			{ID: "p1-red", Color: "Red", Price: 19900000, Stock: models.StockLevel{Count: 4, Tracked: true}, ImgPath: "/img/15-red.png"},
			{ID: "p1-blue", Color: "Blue", Price: 20100000, Stock: models.StockLevel{Count: 2, Tracked: true}, ImgPath: "/img/15-blue.png"},
		},
	}
}

func TestResolveSelectedVariant(t *testing.T) {
	r := Resolve(phone(), "p1-blue")
	require.Equal(t, 20100000.0, r.UnitPrice)
	require.Equal(t, "Blue", r.Color)
	require.Equal(t, "/img/15-blue.png", r.Image)

	max, capped := r.MaxQuantity()
	require.True(t, capped)
	require.Equal(t, 2, max)
}

func TestResolveByColorLabel(t *testing.T) {
	r := Resolve(phone(), "red")
	require.Equal(t, 19900000.0, r.UnitPrice)
	require.Equal(t, "Red", r.Color)
}

func TestResolveUnknownKeyFallsBackToFirstVariant(t *testing.T) {
	r := Resolve(phone(), "gold")
	require.Equal(t, 19900000.0, r.UnitPrice)
	require.Equal(t, "Red", r.Color)
}

func TestResolveFlatProduct(t *testing.T) {
	p := models.Product{ID: "case-01", Price: 490000, Image: "/img/case.png"}
	r := Resolve(p, "")
	require.Equal(t, 490000.0, r.UnitPrice)
	require.Equal(t, "/img/case.png", r.Image)
	require.Empty(t, r.Color)

	_, capped := r.MaxQuantity()
	require.False(t, capped)
}

func TestResolveNoPriceAnywhere(t *testing.T) {
	r := Resolve(models.Product{ID: "mystery"}, "any")
	require.Equal(t, 0.0, r.UnitPrice)
}

func TestResolveVariantWithoutPriceUsesProductPrice(t *testing.T) {
	p := models.Product{
		ID:    "p2",
		Price: 150000,
		Variants: []models.ProductVariant{
			{ID: "p2-a", Color: "White"},
		},
	}
	r := Resolve(p, "p2-a")
	require.Equal(t, 150000.0, r.UnitPrice)
}

func TestResolveNegativePriceClampsToZero(t *testing.T) {
	p := models.Product{ID: "p3", Price: -5}
	require.Equal(t, 0.0, Resolve(p, "").UnitPrice)
}

func TestResolveTrackedZeroStockDoesNotCap(t *testing.T) {
	p := models.Product{
		ID: "p4",
		Variants: []models.ProductVariant{
			{ID: "p4-a", Price: 100, Stock: models.StockLevel{Count: 0, Tracked: true}},
		},
	}
	_, capped := Resolve(p, "p4-a").MaxQuantity()
	require.False(t, capped)
}
