package models

import (
	"time"

	"gorm.io/gorm"
)

// Promotion is a time-bounded, admin-configured set of discounted line items.
// Active means is_active is set AND today falls inside [StartDate, EndDate],
// date-only, inclusive both ends.
type Promotion struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `json:"name"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Template  string          `json:"template"`
	Config    string          `json:"config"`
	IsActive  bool            `json:"is_active" gorm:"default:true"`
	Items     []PromotionItem `json:"items,omitempty" gorm:"foreignKey:PromotionID"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// PromotionItem is a single promoted line. ProductID is nullable: an item can
// advertise a product that no longer exists, in which case ProductName and
// OverridePrice still drive the display. OverridePrice is authoritative over
// the product's own price.
type PromotionItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PromotionID   uint      `gorm:"index;not null" json:"promotion_id"`
	ProductID     *uint     `json:"product_id"`
	ProductName   string    `json:"product_name"`
	OverridePrice float64   `json:"override_price"`
	CreatedAt     time.Time `json:"created_at"`
}
