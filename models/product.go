package models

import (
	"time"
)

type ProductCategory string

const (
	CategoryPremium  ProductCategory = "Premium"
	CategoryStandard ProductCategory = "Standard"
	CategoryBudget   ProductCategory = "Budget"
)

// ValidCategory reports whether c is one of the three catalog tiers.
func ValidCategory(c string) bool {
	switch ProductCategory(c) {
	case CategoryPremium, CategoryStandard, CategoryBudget:
		return true
	}
	return false
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Price       float64         `gorm:"not null" json:"price"`
	Category    ProductCategory `gorm:"type:VARCHAR(20);index" json:"category"`
	SubCategory string          `json:"sub_category"`
	Description string          `json:"description"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Bestseller  bool            `gorm:"index" json:"bestseller"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductImage keeps image references ordered by Position.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	Position  int    `gorm:"not null" json:"position"`
	URL       string `gorm:"not null" json:"url"`
}

// MainImage returns the first image reference, or "" for an
// image-less product. Used for cart/order snapshots.
func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
