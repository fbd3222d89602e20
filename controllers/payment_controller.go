package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
)

// InitiatePayment creates a Razorpay order for an order placed with online
// payment.
func InitiatePayment(c *gin.Context) {
	utils.LogInfo("InitiatePayment called")

	customer, ok := currentCustomer(c)
	if !ok {
		utils.Unauthorized(c, "Please login for access")
		return
	}

	var req struct {
		OrderID uint `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input. order_id is required", err.Error())
		return
	}

	var order models.Order
	if err := config.DB.Where("id = ? AND customer_id = ?", req.OrderID, customer.ID).First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if order.PaymentMethod != "razorpay" {
		utils.BadRequest(c, "Order was not placed with online payment", nil)
		return
	}
	if order.Status != models.OrderStatusPlaced {
		utils.BadRequest(c, "Payment for this order has already been completed", nil)
		return
	}
	if order.RazorpayOrderID != "" {
		utils.BadRequest(c, "A payment is already in progress for this order", nil)
		return
	}

	amountPaise := int(order.FinalTotal * 100)
	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	rzOrder, err := client.Order.Create(map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         "order_rcptid_" + strconv.FormatUint(uint64(order.ID), 10),
		"payment_capture": 1,
	}, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to initiate payment", nil)
		return
	}

	if err := config.DB.Model(&order).
		Update("razorpay_order_id", fmt.Sprintf("%v", rzOrder["id"])).Error; err != nil {
		utils.LogError("Failed to store Razorpay order id for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to initiate payment", nil)
		return
	}

	utils.LogInfo("Payment initiated for order %d", order.ID)
	utils.Success(c, "Payment initiated", gin.H{
		"order": gin.H{
			"id":                order.ID,
			"reference":         order.Reference,
			"razorpay_order_id": rzOrder["id"],
			"amount":            fmt.Sprintf("%.2f", order.FinalTotal),
		},
		"key": os.Getenv("RAZORPAY_KEY"),
		"customer": gin.H{
			"name":  customer.FirstName + " " + customer.LastName,
			"email": customer.Email,
		},
	})
}

// VerifyPayment checks the gateway signature and marks the order paid.
func VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	customer, ok := currentCustomer(c)
	if !ok {
		utils.Unauthorized(c, "Please login for access")
		return
	}

	var req struct {
		OrderID           uint   `json:"order_id" binding:"required"`
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	keySecret := os.Getenv("RAZORPAY_SECRET")
	data := req.RazorpayOrderID + "|" + req.RazorpayPaymentID
	h := hmac.New(sha256.New, []byte(keySecret))
	h.Write([]byte(data))
	expected := hex.EncodeToString(h.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(req.RazorpaySignature)) {
		utils.LogError("Payment verification failed for order %d, customer %d", req.OrderID, customer.ID)
		utils.BadRequest(c, "Payment verification failed", gin.H{"retry": true})
		return
	}

	var order models.Order
	if err := config.DB.Where("id = ? AND customer_id = ? AND razorpay_order_id = ?",
		req.OrderID, customer.ID, req.RazorpayOrderID).First(&order).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if err := config.DB.Model(&order).Update("status", models.OrderStatusPaid).Error; err != nil {
		utils.LogError("Failed to mark order %d paid: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to record payment", nil)
		return
	}

	utils.LogInfo("Order %d paid by customer %d", order.ID, customer.ID)
	utils.Success(c, "Payment verified", gin.H{
		"order": gin.H{
			"id":        order.ID,
			"reference": order.Reference,
			"status":    models.OrderStatusPaid,
		},
	})
}
