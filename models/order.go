package models

import (
	"gorm.io/gorm"
)

// Order statuses
const (
	OrderStatusPlaced    = "Placed"
	OrderStatusPaid      = "Paid"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

type Order struct {
	gorm.Model
	CustomerID      uint        `gorm:"index" json:"customer_id"`
	Customer        Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	OrderItems      []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	Reference       string      `gorm:"uniqueIndex" json:"reference"`
	Subtotal        float64     `json:"subtotal"`
	Discount        float64     `json:"discount"`
	PointsRedeemed  int         `json:"points_redeemed"`
	FinalTotal      float64     `json:"final_total"`
	CouponCode      string      `json:"coupon_code"`
	PaymentMethod   string      `json:"payment_method"` // "cod" or "razorpay"
	RazorpayOrderID string      `json:"razorpay_order_id,omitempty"`
	Status          string      `json:"status"`
	ShipName        string      `json:"ship_name"`
	ShipLine1       string      `json:"ship_line1"`
	ShipLine2       string      `json:"ship_line2"`
	ShipCity        string      `json:"ship_city"`
	ShipPostcode    string      `json:"ship_postcode"`
	ShipCountry     string      `json:"ship_country"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // unit price at purchase time
	Total     float64 `json:"total"`
}

// CartItem is the persisted cart line for a signed-in customer. Guest carts
// live in the cookie session and are merged into these rows at login.
type CartItem struct {
	gorm.Model
	CustomerID uint    `gorm:"index" json:"customer_id"`
	ProductID  uint    `json:"product_id"`
	Product    Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity   int     `json:"quantity"`
}
