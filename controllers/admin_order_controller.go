package controllers

import (
	"strconv"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminListOrders returns orders with optional status filter
func AdminListOrders(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	query := config.DB.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to list orders", nil)
		return
	}

	var orders []models.Order
	if err := query.Preload("Customer").Preload("OrderItems.Product").
		Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to list orders", nil)
		return
	}

	utils.SuccessWithPagination(c, "Orders retrieved", orders, total, page, limit)
}

// validTransitions describes the order status lifecycle.
var validTransitions = map[string][]string{
	models.OrderStatusPlaced:    {models.OrderStatusPaid, models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusPaid:      {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped:   {models.OrderStatusDelivered},
	models.OrderStatusDelivered: {},
	models.OrderStatusCancelled: {},
}

// UpdateOrderStatusRequest sets a new order status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminUpdateOrderStatus moves an order through its lifecycle. Delivery is
// the point where loyalty points are earned: one point per whole currency
// unit of the order subtotal.
func AdminUpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("AdminUpdateOrderStatus called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	allowed := false
	for _, next := range validTransitions[order.Status] {
		if next == req.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		utils.BadRequest(c, "Cannot move order from "+order.Status+" to "+req.Status, nil)
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Update("status", req.Status).Error; err != nil {
			return err
		}
		if req.Status == models.OrderStatusDelivered {
			points := int(order.Subtotal)
			if err := utils.CreditPoints(tx, order.CustomerID, points,
				models.LoyaltyEntryEarn, "Points for order "+order.Reference, &order.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.LogError("Failed to update status for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	utils.LogInfo("Order %d moved to %s", order.ID, req.Status)
	utils.Success(c, "Order updated", gin.H{
		"order": gin.H{
			"id":        order.ID,
			"reference": order.Reference,
			"status":    req.Status,
		},
	})
}
