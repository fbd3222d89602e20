package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon codes are stored upper-cased; lookups normalize before comparing.
type Coupon struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Code        string         `gorm:"uniqueIndex" json:"code"`
	Type        string         `json:"type"` // "percentage" or "fixed"
	Value       float64        `json:"value"`
	MinSpend    float64        `json:"min_spend"`
	Stackable   bool           `json:"stackable" gorm:"default:false"`
	Active      bool           `json:"active" gorm:"default:true"`
	UsageLimit  int            `json:"usage_limit"` // 0 means unlimited
	UsedCount   int            `json:"used_count"`
	ExpiresAt   time.Time      `json:"expires_at"`
	PromotionID *uint          `json:"promotion_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// CouponRedemption records a customer using a coupon on an order.
type CouponRedemption struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"index" json:"customer_id"`
	CouponID   uint      `gorm:"index" json:"coupon_id"`
	OrderID    uint      `json:"order_id"`
	RedeemedAt time.Time `json:"redeemed_at"`
}
