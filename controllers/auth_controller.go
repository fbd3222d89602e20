package controllers

import (
	"time"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/middleware"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest represents the customer signup payload
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	ReferralCode string `json:"referral_code"`
}

// Register creates a customer account and signs them in
func Register(c *gin.Context) {
	utils.LogInfo("Register called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		utils.BadRequest(c, msg, gin.H{"field": "password"})
		return
	}
	if req.Phone != "" && !utils.ValidatePhone(req.Phone) {
		utils.BadRequest(c, "Invalid phone number", gin.H{"field": "phone"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Registration failed", nil)
		return
	}

	customer := models.Customer{
		Email:       req.Email,
		Password:    string(hashedPassword),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		LastLoginAt: time.Now(),
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			utils.LogError("Duplicate registration for email: %s", req.Email)
			utils.BadRequest(c, "An account with this email already exists", nil)
			return
		}
		utils.LogError("Failed to create customer: %v", err)
		utils.InternalServerError(c, "Registration failed", nil)
		return
	}
	utils.LogInfo("Customer %d registered", customer.ID)

	// Referral attribution: an explicit code beats the ref cookie set by a
	// referral-link visit.
	code := req.ReferralCode
	if code == "" {
		if cookieCode, err := c.Cookie(middleware.ReferralCookie); err == nil {
			code = cookieCode
		}
	}
	if code != "" {
		if err := attributeReferral(customer.ID, code); err != nil {
			// Attribution is best-effort; a bad code never fails the signup.
			utils.LogError("Referral attribution failed for customer %d, code %s: %v", customer.ID, code, err)
		} else {
			middleware.ClearReferralCookie(c)
		}
	}

	go func() {
		if err := utils.SendWelcomeEmail(customer.Email, customer.FirstName); err != nil {
			utils.LogError("Failed to send welcome email to %s: %v", customer.Email, err)
		}
	}()

	middleware.IssueCustomerSession(c, customer.ID)
	utils.Created(c, "Registration successful", gin.H{
		"customer": gin.H{
			"id":         customer.ID,
			"email":      customer.Email,
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
		},
	})
}

// LoginRequest represents the customer login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a customer and issues the session cookie
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.Where("email = ?", req.Email).First(&customer).Error; err != nil {
		utils.LogError("Login failed, no customer for email: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if customer.IsBlocked {
		utils.LogError("Blocked customer attempted login: %d", customer.ID)
		utils.Forbidden(c, "Account is blocked")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(req.Password)); err != nil {
		utils.LogError("Invalid password for customer: %d", customer.ID)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	customer.LastLoginAt = time.Now()
	if err := config.DB.Save(&customer).Error; err != nil {
		utils.LogError("Failed to update last login for customer %d: %v", customer.ID, err)
	}

	mergeGuestCart(c, customer.ID)

	middleware.IssueCustomerSession(c, customer.ID)
	utils.LogInfo("Customer %d logged in", customer.ID)
	utils.Success(c, "Login successful", gin.H{
		"customer": gin.H{
			"id":         customer.ID,
			"email":      customer.Email,
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
		},
	})
}

// Logout clears the customer session cookie. There is no server-side session
// state to revoke.
func Logout(c *gin.Context) {
	middleware.ClearCustomerSession(c)
	utils.Success(c, "Logged out successfully", nil)
}
