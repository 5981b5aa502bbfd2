// Package pricing resolves the purchasable facts of a product selection:
// unit price, display image, color label and stock. It is the only place
// that knows the precedence between variant data and a product's flat
// legacy fields.
package pricing

import (
	"strings"

	"github.com/sonmartinn/125SaleIphone-FE/models"
)

// Resolution is the resolved tuple for one (product, variant key) selection.
type Resolution struct {
	UnitPrice float64
	Image     string
	Color     string
	Stock     models.StockLevel
}

// Resolve picks price/image/stock for a product and an optional variant key.
// The key may be a variant id or a color label. Precedence: matching variant,
// then the product's first variant, then the product's flat fields. A product
// with no resolvable price resolves to 0 — Resolve never fails and never
// produces a negative price.
func Resolve(p models.Product, selectedKey string) Resolution {
	if v, ok := findVariant(p, selectedKey); ok {
		return fromVariant(p, v)
	}
	if len(p.Variants) > 0 {
		return fromVariant(p, p.Variants[0])
	}
	return Resolution{
		UnitPrice: clampPrice(float64(p.Price)),
		Image:     p.Image,
	}
}

// MaxQuantity returns the largest quantity a cart line may hold for this
// resolution, and whether that bound applies at all. Untracked stock and a
// tracked zero are both unbounded; the data cannot tell "sold out" from
// "not counted" for older records.
func (r Resolution) MaxQuantity() (int, bool) {
	if !r.Stock.Limits() {
		return 0, false
	}
	return r.Stock.Count, true
}

func findVariant(p models.Product, key string) (models.ProductVariant, bool) {
	if key == "" {
		return models.ProductVariant{}, false
	}
	for _, v := range p.Variants {
		if v.ID == key || strings.EqualFold(v.Color, key) {
			return v, true
		}
	}
	return models.ProductVariant{}, false
}

func fromVariant(p models.Product, v models.ProductVariant) Resolution {
	price := clampPrice(float64(v.Price))
	if price == 0 {
		// Some legacy variants carry no price of their own.
		price = clampPrice(float64(p.Price))
	}
	image := v.ImgPath
	if image == "" {
		image = p.Image
	}
	return Resolution{
		UnitPrice: price,
		Image:     image,
		Color:     v.Color,
		Stock:     v.Stock,
	}
}

func clampPrice(v float64) float64 {
	if v < 0 || v != v { // reject negatives and NaN
		return 0
	}
	return v
}
