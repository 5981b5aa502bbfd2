package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat decodes a price-like field that may arrive as a JSON number,
// a numeric string ("1990000"), or be missing entirely. Anything that does
// not parse becomes 0 so downstream arithmetic never sees NaN.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// FlexString decodes an identifier that may arrive as a string or a number.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = ""
			return nil
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*f = ""
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

// StockLevel keeps "the field was absent" apart from "the field was zero".
// Several legacy product payloads omit stock entirely, and treating that the
// same as an explicit 0 loses information the cart needs.
type StockLevel struct {
	Count   int
	Tracked bool
}

func (s *StockLevel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = StockLevel{}
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*s = StockLevel{}
			return nil
		}
		raw = strings.TrimSpace(str)
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || n < 0 {
		*s = StockLevel{}
		return nil
	}
	*s = StockLevel{Count: int(n), Tracked: true}
	return nil
}

// Limits reports whether this level imposes a quantity cap. An untracked
// level never caps, and neither does a tracked zero: the upstream data cannot
// tell "sold out" from "not counted" for older records, so zero is treated as
// uncapped the same way the storefront always has.
func (s StockLevel) Limits() bool {
	return s.Tracked && s.Count > 0
}

// ProductVariant is one purchasable option of a product (a color, usually).
// Field names vary across data sources; UnmarshalJSON absorbs the variance so
// nothing outside this package has to know about it.
type ProductVariant struct {
	ID      string
	Color   string
	Price   FlexFloat
	Stock   StockLevel
	ImgPath string
}

func (v *ProductVariant) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           FlexString `json:"id"`
		IDProductVar FlexString `json:"IdProductVar"`
		VariantID    FlexString `json:"variant_id"`
		Color        string     `json:"color"`
		Price        FlexFloat  `json:"price"`
		Stock        StockLevel `json:"stock"`
		ImgPath      string     `json:"ImgPath"`
		ImagePath    string     `json:"image_path"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.ID = firstNonEmpty(string(raw.ID), string(raw.IDProductVar), string(raw.VariantID))
	v.Color = raw.Color
	v.Price = raw.Price
	v.Stock = raw.Stock
	v.ImgPath = firstNonEmpty(raw.ImgPath, raw.ImagePath)
	return nil
}

// Product is a catalog entry as served by the shop API. Variants, when
// present, are authoritative for price/stock/image; the flat fields are a
// fallback kept for variant-less products.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       FlexFloat
	Image       string
	Variants    []ProductVariant
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          FlexString       `json:"id"`
		IDProduct   FlexString       `json:"IdProduct"`
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Category    string           `json:"category"`
		Price       FlexFloat        `json:"price"`
		Image       string           `json:"image"`
		Variants    []ProductVariant `json:"variants"`
		Vars        []ProductVariant `json:"product_variants"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.ID = firstNonEmpty(string(raw.ID), string(raw.IDProduct))
	p.Name = raw.Name
	p.Description = raw.Description
	p.Category = raw.Category
	p.Price = raw.Price
	p.Image = raw.Image
	p.Variants = raw.Variants
	if len(p.Variants) == 0 {
		p.Variants = raw.Vars
	}
	return nil
}

// MarshalJSON emits the canonical shape only; the legacy aliases are
// read-side tolerance, never written back out.
func (p Product) MarshalJSON() ([]byte, error) {
	type canonical struct {
		ID          string           `json:"id"`
		Name        string           `json:"name"`
		Description string           `json:"description,omitempty"`
		Category    string           `json:"category,omitempty"`
		Price       float64          `json:"price"`
		Image       string           `json:"image,omitempty"`
		Variants    []ProductVariant `json:"variants,omitempty"`
	}
	return json.Marshal(canonical{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       float64(p.Price),
		Image:       p.Image,
		Variants:    p.Variants,
	})
}

func (v ProductVariant) MarshalJSON() ([]byte, error) {
	type canonical struct {
		ID      string  `json:"id,omitempty"`
		Color   string  `json:"color,omitempty"`
		Price   float64 `json:"price"`
		Stock   *int    `json:"stock,omitempty"`
		ImgPath string  `json:"image_path,omitempty"`
	}
	c := canonical{
		ID:      v.ID,
		Color:   v.Color,
		Price:   float64(v.Price),
		ImgPath: v.ImgPath,
	}
	if v.Stock.Tracked {
		n := v.Stock.Count
		c.Stock = &n
	}
	return json.Marshal(c)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
