package controllers

import (
	"time"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// ApplyCouponRequest carries the coupon code to apply
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyCoupon validates a coupon against the current cart and remembers it
// for checkout.
func ApplyCoupon(c *gin.Context) {
	utils.LogInfo("ApplyCoupon called")

	customer, ok := currentCustomer(c)
	if !ok {
		utils.Unauthorized(c, "Please login for access")
		return
	}

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	code := utils.NormalizeCouponCode(req.Code)

	var coupon models.Coupon
	if err := config.DB.Where("code = ?", code).First(&coupon).Error; err != nil {
		utils.LogError("Coupon not found: %s", code)
		utils.NotFound(c, "Invalid coupon")
		return
	}

	// A coupon with a usage limit is one-per-customer as well.
	var priorUses int64
	if err := config.DB.Model(&models.CouponRedemption{}).
		Where("customer_id = ? AND coupon_id = ?", customer.ID, coupon.ID).
		Count(&priorUses).Error; err == nil && priorUses > 0 && coupon.UsageLimit > 0 {
		utils.BadRequest(c, "You have already used this coupon", nil)
		return
	}

	cart, err := cartQuantities(c)
	if err != nil {
		utils.LogError("Failed to load cart for coupon apply: %v", err)
		utils.InternalServerError(c, "Failed to apply coupon", nil)
		return
	}
	_, subtotal, err := resolveCartLines(cart)
	if err != nil {
		utils.LogError("Failed to price cart for coupon apply: %v", err)
		utils.InternalServerError(c, "Failed to apply coupon", nil)
		return
	}

	if usable, reason := utils.CouponUsable(&coupon, subtotal, time.Now()); !usable {
		utils.BadRequest(c, reason, nil)
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyCoupon, coupon.Code)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to store applied coupon: %v", err)
		utils.InternalServerError(c, "Failed to apply coupon", nil)
		return
	}

	discount := utils.CouponDiscount(&coupon, subtotal)
	utils.LogInfo("Customer %d applied coupon %s", customer.ID, coupon.Code)
	utils.Success(c, "Coupon applied", gin.H{
		"code":     coupon.Code,
		"discount": discount,
		"subtotal": subtotal,
		"total":    subtotal - discount,
	})
}

// RemoveCoupon forgets the applied coupon
func RemoveCoupon(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(sessionKeyCoupon)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to remove applied coupon: %v", err)
		utils.InternalServerError(c, "Failed to remove coupon", nil)
		return
	}
	utils.Success(c, "Coupon removed", nil)
}
