package controllers

import (
	"time"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckoutRequest places an order from the customer's cart
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"` // "cod" or "razorpay"
	RedeemPoints  int    `json:"redeem_points"`
	ShipName      string `json:"ship_name" binding:"required"`
	ShipLine1     string `json:"ship_line1" binding:"required"`
	ShipLine2     string `json:"ship_line2"`
	ShipCity      string `json:"ship_city" binding:"required"`
	ShipPostcode  string `json:"ship_postcode" binding:"required"`
	ShipCountry   string `json:"ship_country" binding:"required"`
}

// Checkout turns the cart into an order. Pricing, coupon and points
// bookkeeping happen inside one transaction; the unique and check constraints
// at the store are the final word under concurrency.
func Checkout(c *gin.Context) {
	utils.LogInfo("Checkout called")

	customer, ok := currentCustomer(c)
	if !ok {
		utils.Unauthorized(c, "Please login for access")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	if req.PaymentMethod != "cod" && req.PaymentMethod != "razorpay" {
		utils.BadRequest(c, "payment_method must be cod or razorpay", gin.H{"field": "payment_method"})
		return
	}
	if req.RedeemPoints < 0 {
		utils.BadRequest(c, "redeem_points must not be negative", gin.H{"field": "redeem_points"})
		return
	}

	var cartItems []models.CartItem
	if err := config.DB.Preload("Product").Where("customer_id = ?", customer.ID).Find(&cartItems).Error; err != nil {
		utils.LogError("Failed to load cart for customer %d: %v", customer.ID, err)
		utils.InternalServerError(c, "Checkout failed", nil)
		return
	}
	if len(cartItems) == 0 {
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}

	var subtotal float64
	for _, item := range cartItems {
		if !item.Product.IsActive {
			utils.BadRequest(c, "Product is no longer available: "+item.Product.Name, nil)
			return
		}
		if item.Product.Stock < item.Quantity {
			utils.BadRequest(c, "Insufficient stock for "+item.Product.Name, nil)
			return
		}
		subtotal += item.Product.Price * float64(item.Quantity)
	}

	// Applied coupon, if any, re-validated at order time.
	session := sessions.Default(c)
	var coupon *models.Coupon
	if code, ok := session.Get(sessionKeyCoupon).(string); ok && code != "" {
		var row models.Coupon
		if err := config.DB.Where("code = ?", code).First(&row).Error; err == nil {
			if usable, reason := utils.CouponUsable(&row, subtotal, time.Now()); usable {
				coupon = &row
			} else {
				utils.BadRequest(c, reason, nil)
				return
			}
		}
	}

	var discount float64
	if coupon != nil {
		discount = utils.CouponDiscount(coupon, subtotal)
	}

	redeemPoints := req.RedeemPoints
	if redeemPoints > 0 {
		balance, err := utils.RedeemablePoints(config.DB, customer.ID)
		if err != nil {
			utils.LogError("Failed to read points for customer %d: %v", customer.ID, err)
			utils.InternalServerError(c, "Checkout failed", nil)
			return
		}
		if redeemPoints > balance {
			utils.BadRequest(c, "Not enough redeemable points", nil)
			return
		}
		// One point is worth one currency unit, capped at the payable total.
		if remaining := subtotal - discount; float64(redeemPoints) > remaining {
			redeemPoints = int(remaining)
		}
	}

	finalTotal := subtotal - discount - float64(redeemPoints)
	if finalTotal < 0 {
		finalTotal = 0
	}

	order := models.Order{
		CustomerID:     customer.ID,
		Reference:      "SS-" + uuid.NewString(),
		Subtotal:       subtotal,
		Discount:       discount,
		PointsRedeemed: redeemPoints,
		FinalTotal:     finalTotal,
		PaymentMethod:  req.PaymentMethod,
		Status:         models.OrderStatusPlaced,
		ShipName:       req.ShipName,
		ShipLine1:      req.ShipLine1,
		ShipLine2:      req.ShipLine2,
		ShipCity:       req.ShipCity,
		ShipPostcode:   req.ShipPostcode,
		ShipCountry:    req.ShipCountry,
	}
	if coupon != nil {
		order.CouponCode = coupon.Code
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range cartItems {
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price,
				Total:     item.Product.Price * float64(item.Quantity),
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}

			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return utils.BadRequestError("Insufficient stock for "+item.Product.Name, nil)
			}
		}

		if coupon != nil {
			// The guarded update enforces the usage limit under concurrency.
			result := tx.Model(&models.Coupon{}).
				Where("id = ? AND (usage_limit = 0 OR used_count < usage_limit)", coupon.ID).
				Update("used_count", gorm.Expr("used_count + 1"))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return utils.BadRequestError("Coupon usage limit reached", nil)
			}
			redemption := models.CouponRedemption{
				CustomerID: customer.ID,
				CouponID:   coupon.ID,
				OrderID:    order.ID,
				RedeemedAt: time.Now(),
			}
			if err := tx.Create(&redemption).Error; err != nil {
				return err
			}
		}

		if redeemPoints > 0 {
			if err := utils.RedeemPoints(tx, customer.ID, redeemPoints, &order.ID); err != nil {
				return err
			}
		}

		return tx.Where("customer_id = ?", customer.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		if appErr, ok := err.(*utils.AppError); ok {
			utils.BadRequest(c, appErr.Message, nil)
			return
		}
		utils.LogError("Checkout transaction failed for customer %d: %v", customer.ID, err)
		utils.InternalServerError(c, "Checkout failed", nil)
		return
	}

	session.Delete(sessionKeyCoupon)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear applied coupon after checkout: %v", err)
	}

	utils.LogInfo("Order %d placed by customer %d, total %.2f", order.ID, customer.ID, order.FinalTotal)
	utils.Created(c, "Order placed", gin.H{
		"order": gin.H{
			"id":              order.ID,
			"reference":       order.Reference,
			"subtotal":        order.Subtotal,
			"discount":        order.Discount,
			"points_redeemed": order.PointsRedeemed,
			"final_total":     order.FinalTotal,
			"payment_method":  order.PaymentMethod,
			"status":          order.Status,
		},
	})
}
