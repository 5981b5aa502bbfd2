package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductDecodeLegacyShapes(t *testing.T) {
	t.Run("capitalized variant fields with string price", func(t *testing.T) {
		raw := `{
			"IdProduct": 12,
			"name": "iPhone 15",
			"category": "phone",
			"variants": [
				{"IdProductVar": "12-red", "Color": "Red", "Price": "19900000", "Stock": 4, "ImgPath": "/img/15-red.png"}
			]
		}`
		var p Product
		require.NoError(t, json.Unmarshal([]byte(raw), &p))
		require.Equal(t, "12", p.ID)
		require.Len(t, p.Variants, 1)

		v := p.Variants[0]
		require.Equal(t, "12-red", v.ID)
		require.Equal(t, "Red", v.Color)
		require.Equal(t, 19900000.0, float64(v.Price))
		require.True(t, v.Stock.Tracked)
		require.Equal(t, 4, v.Stock.Count)
		require.Equal(t, "/img/15-red.png", v.ImgPath)
	})

	t.Run("flat product without variants", func(t *testing.T) {
		raw := `{"id": "case-01", "name": "Silicone Case", "price": 490000, "image": "/img/case.png"}`
		var p Product
		require.NoError(t, json.Unmarshal([]byte(raw), &p))
		require.Equal(t, "case-01", p.ID)
		require.Empty(t, p.Variants)
		require.Equal(t, 490000.0, float64(p.Price))
	})

	t.Run("absent stock decodes as untracked", func(t *testing.T) {
		raw := `{"id": 1, "variants": [{"variant_id": 7, "color": "Blue", "price": 100}]}`
		var p Product
		require.NoError(t, json.Unmarshal([]byte(raw), &p))
		require.False(t, p.Variants[0].Stock.Tracked)
		require.False(t, p.Variants[0].Stock.Limits())
	})

	t.Run("explicit zero stock is tracked but does not cap", func(t *testing.T) {
		var s StockLevel
		require.NoError(t, json.Unmarshal([]byte(`0`), &s))
		require.True(t, s.Tracked)
		require.Equal(t, 0, s.Count)
		require.False(t, s.Limits())
	})

	t.Run("unparseable price coerces to zero", func(t *testing.T) {
		var f FlexFloat
		require.NoError(t, json.Unmarshal([]byte(`"free"`), &f))
		require.Equal(t, 0.0, float64(f))
	})

	t.Run("product_variants alias", func(t *testing.T) {
		raw := `{"id": "p9", "product_variants": [{"id": "p9-bk", "color": "Black", "price": "250000"}]}`
		var p Product
		require.NoError(t, json.Unmarshal([]byte(raw), &p))
		require.Len(t, p.Variants, 1)
		require.Equal(t, "p9-bk", p.Variants[0].ID)
	})
}
