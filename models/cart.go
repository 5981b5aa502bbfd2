package models

import "time"

// Cart is the persisted session cart. One row per user; items survive page
// reloads and process restarts until an explicit clear.
type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one persisted cart line. ProductJSON carries the normalized
// catalog snapshot taken when the line was added, so a cart can be rebuilt
// without a catalog round-trip; quantity and identity live in their own
// columns. (ProductID, VariantKey) is unique within a cart.
type CartItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CartID      uint      `gorm:"index" json:"-"`
	ProductID   string    `gorm:"index" json:"product_id"`
	VariantKey  string    `json:"variant_key"`
	Quantity    int       `json:"quantity"`
	ProductJSON []byte    `gorm:"type:jsonb" json:"-"`
	AddedAt     time.Time `json:"added_at"`
}
