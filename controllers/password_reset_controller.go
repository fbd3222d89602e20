package controllers

import (
	"errors"
	"time"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

// ForgotPasswordRequest carries the account email
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword emails a one-hour reset link. The response never reveals
// whether the email has an account.
func ForgotPassword(c *gin.Context) {
	utils.LogInfo("ForgotPassword called")

	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	cfg, _ := config.LoadConfig()

	var customer models.Customer
	if err := config.DB.Where("email = ?", req.Email).First(&customer).Error; err != nil {
		utils.LogInfo("Password reset requested for unknown email: %s", req.Email)
		utils.Success(c, "If the email exists, a reset link has been sent", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"customer_id": customer.ID,
		"purpose":     "password_reset",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(cfg.SessionSecret))
	if err != nil {
		utils.LogError("Failed to sign reset token for customer %d: %v", customer.ID, err)
		utils.InternalServerError(c, "Failed to process request", nil)
		return
	}

	go func() {
		if err := utils.SendPasswordResetEmail(customer.Email, cfg.SiteURL, tokenString); err != nil {
			utils.LogError("Failed to send reset email to %s: %v", customer.Email, err)
		}
	}()

	utils.Success(c, "If the email exists, a reset link has been sent", nil)
}

// ResetPasswordRequest carries the emailed token and the new password
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResetPassword validates the reset token and updates the password
func ResetPassword(c *gin.Context) {
	utils.LogInfo("ResetPassword called")

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		utils.BadRequest(c, msg, gin.H{"field": "password"})
		return
	}

	cfg, _ := config.LoadConfig()
	customerID, err := parseResetToken(req.Token, cfg.SessionSecret)
	if err != nil {
		utils.LogError("Invalid reset token: %v", err)
		utils.BadRequest(c, "Invalid or expired reset token", nil)
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, customerID).Error; err != nil {
		utils.BadRequest(c, "Invalid or expired reset token", nil)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalServerError(c, "Failed to update password", nil)
		return
	}
	if err := config.DB.Model(&customer).Update("password", string(hashed)).Error; err != nil {
		utils.LogError("Failed to update password for customer %d: %v", customer.ID, err)
		utils.InternalServerError(c, "Failed to update password", nil)
		return
	}

	utils.LogInfo("Password reset for customer %d", customer.ID)
	utils.Success(c, "Password updated successfully", nil)
}

func parseResetToken(tokenString, secret string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}
	if purpose, _ := claims["purpose"].(string); purpose != "password_reset" {
		return 0, errors.New("wrong token purpose")
	}
	id, ok := claims["customer_id"].(float64)
	if !ok {
		return 0, errors.New("missing customer id")
	}
	return uint(id), nil
}
