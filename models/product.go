package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups products for browsing
type Category struct {
	gorm.Model
	Name        string    `json:"name" gorm:"uniqueIndex"`
	Description string    `json:"description"`
	Products    []Product `json:"products,omitempty"`
	Blocked     bool      `json:"blocked" gorm:"default:false"`
}

// Product represents a catalog item
type Product struct {
	gorm.Model
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	OriginalPrice  float64   `json:"original_price"`
	Discount       float64   `json:"discount"`
	DiscountType   string    `json:"discount_type"` // "percentage" or "fixed"
	DiscountExpiry time.Time `json:"discount_expiry"`
	Image          string    `json:"image"`
	Stock          int       `json:"stock"`
	CategoryID     uint      `json:"category_id"`
	Category       Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	IsFeatured     bool      `json:"is_featured" gorm:"default:false"`
}
