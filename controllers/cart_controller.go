package controllers

import (
	"time"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys for guest state
const (
	sessionKeyCart   = "cart"
	sessionKeyCoupon = "coupon"
)

// CartLine is one resolved cart row returned to the client
type CartLine struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

// getSessionCart reads the guest cart from the cookie session.
func getSessionCart(c *gin.Context) map[uint]int {
	session := sessions.Default(c)
	if raw := session.Get(sessionKeyCart); raw != nil {
		if cart, ok := raw.(map[uint]int); ok {
			return cart
		}
	}
	return map[uint]int{}
}

func saveSessionCart(c *gin.Context, cart map[uint]int) {
	session := sessions.Default(c)
	session.Set(sessionKeyCart, cart)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session cart: %v", err)
	}
}

// mergeGuestCart folds the cookie-session cart into the customer's persisted
// cart at login, then clears the session copy.
func mergeGuestCart(c *gin.Context, customerID uint) {
	cart := getSessionCart(c)
	if len(cart) == 0 {
		return
	}
	for productID, qty := range cart {
		var item models.CartItem
		err := config.DB.Where("customer_id = ? AND product_id = ?", customerID, productID).First(&item).Error
		if err != nil {
			item = models.CartItem{CustomerID: customerID, ProductID: productID, Quantity: qty}
			if err := config.DB.Create(&item).Error; err != nil {
				utils.LogError("Failed to merge cart line for customer %d: %v", customerID, err)
			}
			continue
		}
		item.Quantity += qty
		if err := config.DB.Save(&item).Error; err != nil {
			utils.LogError("Failed to merge cart line for customer %d: %v", customerID, err)
		}
	}
	session := sessions.Default(c)
	session.Delete(sessionKeyCart)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear session cart: %v", err)
	}
	utils.LogInfo("Merged %d guest cart lines into customer %d", len(cart), customerID)
}

// cartQuantities returns the current cart as productID -> quantity,
// DB-backed for customers and session-backed for guests.
func cartQuantities(c *gin.Context) (map[uint]int, error) {
	if customer, ok := currentCustomer(c); ok {
		var items []models.CartItem
		if err := config.DB.Where("customer_id = ?", customer.ID).Find(&items).Error; err != nil {
			return nil, err
		}
		cart := make(map[uint]int, len(items))
		for _, item := range items {
			cart[item.ProductID] = item.Quantity
		}
		return cart, nil
	}
	return getSessionCart(c), nil
}

func setCartQuantity(c *gin.Context, productID uint, quantity int) error {
	if customer, ok := currentCustomer(c); ok {
		if quantity <= 0 {
			return config.DB.Where("customer_id = ? AND product_id = ?", customer.ID, productID).
				Delete(&models.CartItem{}).Error
		}
		var item models.CartItem
		err := config.DB.Where("customer_id = ? AND product_id = ?", customer.ID, productID).First(&item).Error
		if err != nil {
			return config.DB.Create(&models.CartItem{
				CustomerID: customer.ID,
				ProductID:  productID,
				Quantity:   quantity,
			}).Error
		}
		item.Quantity = quantity
		return config.DB.Save(&item).Error
	}

	cart := getSessionCart(c)
	if quantity <= 0 {
		delete(cart, productID)
	} else {
		cart[productID] = quantity
	}
	saveSessionCart(c, cart)
	return nil
}

// resolveCartLines loads product rows for the cart and prices each line.
func resolveCartLines(cart map[uint]int) ([]CartLine, float64, error) {
	if len(cart) == 0 {
		return []CartLine{}, 0, nil
	}
	ids := make([]uint, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}

	var products []models.Product
	if err := config.DB.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	lines := make([]CartLine, 0, len(products))
	var subtotal float64
	for _, product := range products {
		qty := cart[product.ID]
		line := CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  qty,
			Total:     product.Price * float64(qty),
		}
		subtotal += line.Total
		lines = append(lines, line)
	}
	return lines, subtotal, nil
}

// AddToCartRequest adds or bumps a product line
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// AddToCart adds a product to the cart (guest or customer)
func AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}
	if !product.IsActive {
		utils.BadRequest(c, "Product is not available", nil)
		return
	}
	if product.Stock < req.Quantity {
		utils.BadRequest(c, "Insufficient stock", nil)
		return
	}

	cart, err := cartQuantities(c)
	if err != nil {
		utils.LogError("Failed to load cart: %v", err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}
	if err := setCartQuantity(c, req.ProductID, cart[req.ProductID]+req.Quantity); err != nil {
		utils.LogError("Failed to update cart: %v", err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}

	GetCart(c)
}

// UpdateCartRequest sets an exact quantity
type UpdateCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpdateCart sets the quantity for a cart line
func UpdateCart(c *gin.Context) {
	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	if err := setCartQuantity(c, req.ProductID, req.Quantity); err != nil {
		utils.LogError("Failed to update cart: %v", err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}
	GetCart(c)
}

// RemoveFromCart drops one product line
func RemoveFromCart(c *gin.Context) {
	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}
	if err := setCartQuantity(c, req.ProductID, 0); err != nil {
		utils.LogError("Failed to update cart: %v", err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}
	GetCart(c)
}

// ClearCart empties the cart
func ClearCart(c *gin.Context) {
	if customer, ok := currentCustomer(c); ok {
		if err := config.DB.Where("customer_id = ?", customer.ID).Delete(&models.CartItem{}).Error; err != nil {
			utils.LogError("Failed to clear cart for customer %d: %v", customer.ID, err)
			utils.InternalServerError(c, "Failed to clear cart", nil)
			return
		}
	} else {
		saveSessionCart(c, map[uint]int{})
	}

	session := sessions.Default(c)
	session.Delete(sessionKeyCoupon)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear applied coupon: %v", err)
	}

	utils.Success(c, "Cart cleared", gin.H{"items": []CartLine{}, "subtotal": 0})
}

// GetCart returns cart lines, subtotal and any applied coupon discount
func GetCart(c *gin.Context) {
	cart, err := cartQuantities(c)
	if err != nil {
		utils.LogError("Failed to load cart: %v", err)
		utils.Success(c, "Cart retrieved", gin.H{"items": []CartLine{}, "subtotal": 0})
		return
	}

	lines, subtotal, err := resolveCartLines(cart)
	if err != nil {
		utils.LogError("Failed to price cart: %v", err)
		utils.Success(c, "Cart retrieved", gin.H{"items": []CartLine{}, "subtotal": 0})
		return
	}

	payload := gin.H{
		"items":    lines,
		"subtotal": subtotal,
		"total":    subtotal,
	}

	session := sessions.Default(c)
	if code, ok := session.Get(sessionKeyCoupon).(string); ok && code != "" {
		var coupon models.Coupon
		if err := config.DB.Where("code = ?", code).First(&coupon).Error; err == nil {
			if ok, _ := utils.CouponUsable(&coupon, subtotal, time.Now()); ok {
				discount := utils.CouponDiscount(&coupon, subtotal)
				payload["coupon"] = code
				payload["discount"] = discount
				payload["total"] = subtotal - discount
			}
		}
	}

	utils.Success(c, "Cart retrieved", payload)
}
