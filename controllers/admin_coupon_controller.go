package controllers

import (
	"strconv"
	"time"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
)

// CreateCouponRequest is the admin payload for a new coupon
type CreateCouponRequest struct {
	Code        string  `json:"code" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Value       float64 `json:"value" binding:"required"`
	MinSpend    float64 `json:"min_spend"`
	Stackable   bool    `json:"stackable"`
	UsageLimit  int     `json:"usage_limit"`
	ExpiresAt   string  `json:"expires_at"`
	PromotionID *uint   `json:"promotion_id"`
}

// CreateCoupon creates a coupon. Codes are unique case-insensitively; a
// duplicate surfaces as a validation error with a domain message.
func CreateCoupon(c *gin.Context) {
	utils.LogInfo("CreateCoupon called")

	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if req.Type != utils.CouponTypePercentage && req.Type != utils.CouponTypeFixed {
		utils.BadRequest(c, "type must be percentage or fixed", gin.H{"field": "type"})
		return
	}
	if req.Type == utils.CouponTypePercentage && (req.Value <= 0 || req.Value > 100) {
		utils.BadRequest(c, "percentage value must be between 1 and 100", gin.H{"field": "value"})
		return
	}
	if req.Value <= 0 {
		utils.BadRequest(c, "value must be positive", gin.H{"field": "value"})
		return
	}

	coupon := models.Coupon{
		Code:        utils.NormalizeCouponCode(req.Code),
		Type:        req.Type,
		Value:       req.Value,
		MinSpend:    req.MinSpend,
		Stackable:   req.Stackable,
		Active:      true,
		UsageLimit:  req.UsageLimit,
		PromotionID: req.PromotionID,
	}
	if req.ExpiresAt != "" {
		expiresAt, err := time.Parse("2006-01-02", req.ExpiresAt)
		if err != nil {
			utils.BadRequest(c, "Invalid expires_at, expected YYYY-MM-DD", gin.H{"field": "expires_at"})
			return
		}
		coupon.ExpiresAt = expiresAt
	}

	if req.PromotionID != nil {
		var promotion models.Promotion
		if err := config.DB.First(&promotion, *req.PromotionID).Error; err != nil {
			utils.BadRequest(c, "promotion_id does not reference a promotion", gin.H{"field": "promotion_id"})
			return
		}
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			utils.LogError("Duplicate coupon code: %s", coupon.Code)
			utils.BadRequest(c, "A coupon with this code already exists", nil)
			return
		}
		utils.LogError("Failed to create coupon: %v", err)
		utils.InternalServerError(c, "Failed to create coupon", nil)
		return
	}

	utils.LogInfo("Coupon %s created", coupon.Code)
	utils.Created(c, "Coupon created", gin.H{"coupon": coupon})
}

// ListCoupons returns all coupons for the back-office
func ListCoupons(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	var total int64
	if err := config.DB.Model(&models.Coupon{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count coupons: %v", err)
		utils.InternalServerError(c, "Failed to list coupons", nil)
		return
	}

	var coupons []models.Coupon
	if err := config.DB.Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to list coupons", nil)
		return
	}

	utils.SuccessWithPagination(c, "Coupons retrieved", coupons, total, page, limit)
}

// UpdateCouponRequest toggles coupon state. Only Active is mutable after
// creation; everything else is fixed once issued.
type UpdateCouponRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// UpdateCoupon activates or deactivates a coupon
func UpdateCoupon(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid coupon ID", nil)
		return
	}

	var req UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, id).Error; err != nil {
		utils.NotFound(c, "Coupon not found")
		return
	}

	if err := config.DB.Model(&coupon).Update("active", *req.Active).Error; err != nil {
		utils.LogError("Failed to update coupon %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to update coupon", nil)
		return
	}

	utils.Success(c, "Coupon updated", gin.H{"coupon": coupon})
}

// DeleteCoupon removes a coupon
func DeleteCoupon(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid coupon ID", nil)
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, id).Error; err != nil {
		utils.NotFound(c, "Coupon not found")
		return
	}

	if err := config.DB.Delete(&coupon).Error; err != nil {
		utils.LogError("Failed to delete coupon %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to delete coupon", nil)
		return
	}

	utils.LogInfo("Coupon %s deleted", coupon.Code)
	utils.Success(c, "Coupon deleted", nil)
}
