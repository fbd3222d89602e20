package utils

import (
	"time"

	"github.com/arjun-dev/shopsphere/models"
)

// Coupon types
const (
	CouponTypePercentage = "percentage"
	CouponTypeFixed      = "fixed"
)

// CouponUsable checks whether a coupon can be applied to a cart of the given
// subtotal right now. Returns a caller-facing reason when it cannot.
func CouponUsable(coupon *models.Coupon, subtotal float64, now time.Time) (bool, string) {
	if !coupon.Active {
		return false, "Coupon is not active"
	}
	if !coupon.ExpiresAt.IsZero() && now.After(coupon.ExpiresAt) {
		return false, "Coupon has expired"
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return false, "Coupon usage limit reached"
	}
	if subtotal < coupon.MinSpend {
		return false, "Cart total is below the coupon minimum spend"
	}
	return true, ""
}

// CouponDiscount computes the discount a coupon grants on a subtotal. The
// discount never exceeds the subtotal.
func CouponDiscount(coupon *models.Coupon, subtotal float64) float64 {
	var discount float64
	switch coupon.Type {
	case CouponTypePercentage:
		discount = subtotal * coupon.Value / 100
	case CouponTypeFixed:
		discount = coupon.Value
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}
