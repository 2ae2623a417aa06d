package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one (product, size) line. The Product* columns are a
// snapshot taken when the line was first added and are not refreshed
// when the catalog changes, so totals reflect price-at-add-time.
type CartItem struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	CartID             uint      `gorm:"index:idx_cart_product_size,unique" json:"-"`
	ProductID          uint      `gorm:"index:idx_cart_product_size,unique" json:"product_id"`
	Size               string    `gorm:"index:idx_cart_product_size,unique" json:"size"`
	Quantity           int       `json:"quantity"`
	ProductName        string    `json:"product_name"`
	ProductPrice       float64   `json:"product_price"`
	ProductImage       string    `json:"product_image"`
	ProductDescription string    `json:"product_description"`
	AddedAt            time.Time `json:"added_at"`
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal sums snapshot price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.ProductPrice * float64(item.Quantity)
	}
	return sum
}
