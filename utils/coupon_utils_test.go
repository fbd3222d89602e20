package utils

import (
	"testing"
	"time"

	"github.com/arjun-dev/shopsphere/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "SAVE10", NormalizeCouponCode("  save10 "))
	assert.Equal(t, "SAVE10", NormalizeCouponCode("Save10"))
}

func TestCouponUsable(t *testing.T) {
	now := time.Now()
	base := models.Coupon{
		Code:       "SAVE10",
		Type:       CouponTypePercentage,
		Value:      10,
		MinSpend:   50,
		Active:     true,
		UsageLimit: 2,
		ExpiresAt:  now.Add(24 * time.Hour),
	}

	ok, _ := CouponUsable(&base, 100, now)
	assert.True(t, ok)

	inactive := base
	inactive.Active = false
	ok, reason := CouponUsable(&inactive, 100, now)
	assert.False(t, ok)
	assert.Equal(t, "Coupon is not active", reason)

	expired := base
	expired.ExpiresAt = now.Add(-time.Hour)
	ok, reason = CouponUsable(&expired, 100, now)
	assert.False(t, ok)
	assert.Equal(t, "Coupon has expired", reason)

	exhausted := base
	exhausted.UsedCount = 2
	ok, reason = CouponUsable(&exhausted, 100, now)
	assert.False(t, ok)
	assert.Equal(t, "Coupon usage limit reached", reason)

	ok, reason = CouponUsable(&base, 40, now)
	assert.False(t, ok)
	assert.Equal(t, "Cart total is below the coupon minimum spend", reason)

	// Zero usage limit means unlimited.
	unlimited := base
	unlimited.UsageLimit = 0
	unlimited.UsedCount = 9000
	ok, _ = CouponUsable(&unlimited, 100, now)
	assert.True(t, ok)
}

func TestCouponDiscount(t *testing.T) {
	percent := models.Coupon{Type: CouponTypePercentage, Value: 10}
	assert.InDelta(t, 10.0, CouponDiscount(&percent, 100), 0.001)

	fixed := models.Coupon{Type: CouponTypeFixed, Value: 25}
	assert.InDelta(t, 25.0, CouponDiscount(&fixed, 100), 0.001)

	// Capped at the subtotal.
	assert.InDelta(t, 15.0, CouponDiscount(&fixed, 15), 0.001)

	unknown := models.Coupon{Type: "mystery", Value: 25}
	assert.Zero(t, CouponDiscount(&unknown, 100))
}
