package cart

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sonmartinn/125SaleIphone-FE/models"
)

// GormPersister stores carts in Postgres: one carts row per user, one
// cart_items row per line, with the normalized product snapshot serialized
// into the item row.
type GormPersister struct {
	db *gorm.DB
}

func NewGormPersister(db *gorm.DB) *GormPersister {
	return &GormPersister{db: db}
}

func (p *GormPersister) Load(userID string) ([]Line, error) {
	var c models.Cart
	err := p.db.Preload("Items").Where("user_id = ?", userID).First(&c).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	lines := make([]Line, 0, len(c.Items))
	for _, item := range c.Items {
		var product models.Product
		if err := json.Unmarshal(item.ProductJSON, &product); err != nil {
			// A corrupt snapshot drops the line rather than the cart.
			continue
		}
		lines = append(lines, Line{
			Product:    product,
			VariantKey: item.VariantKey,
			Quantity:   item.Quantity,
			AddedAt:    item.AddedAt,
		})
	}
	return lines, nil
}

func (p *GormPersister) Save(userID string, lines []Line) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		var c models.Cart
		err := tx.Where("user_id = ?", userID).First(&c).Error
		if err == gorm.ErrRecordNotFound {
			c = models.Cart{UserID: userID}
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("create cart: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("fetch cart: %w", err)
		}

		if err := tx.Where("cart_id = ?", c.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("clear cart items: %w", err)
		}

		for _, line := range lines {
			snapshot, err := json.Marshal(line.Product)
			if err != nil {
				return fmt.Errorf("encode product snapshot: %w", err)
			}
			item := models.CartItem{
				CartID:      c.CartID,
				ProductID:   line.Product.ID,
				VariantKey:  line.VariantKey,
				Quantity:    line.Quantity,
				ProductJSON: snapshot,
				AddedAt:     line.AddedAt,
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("save cart item: %w", err)
			}
		}

		return tx.Model(&c).Update("updated_at", time.Now()).Error
	})
}
