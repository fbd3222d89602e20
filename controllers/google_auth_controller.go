package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/middleware"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// GoogleLogin redirects to the Google consent screen
func GoogleLogin(c *gin.Context) {
	url := config.GoogleOAuthConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the auth code, provisions the customer if needed
// and issues the session cookie.
func GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "No code provided", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c, code)
	if err != nil {
		utils.LogError("Google token exchange failed: %v", err)
		utils.InternalServerError(c, "Failed to exchange token", nil)
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.LogError("Google userinfo request failed: %v", err)
		utils.InternalServerError(c, "Failed to get user info", nil)
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.InternalServerError(c, "Failed to read response", nil)
		return
	}

	var googleUser GoogleUserInfo
	if err := json.Unmarshal(data, &googleUser); err != nil {
		utils.InternalServerError(c, "Failed to parse user info", nil)
		return
	}

	var customer models.Customer
	if err := config.DB.Where("email = ?", googleUser.Email).First(&customer).Error; err != nil {
		// First Google sign-in: provision an account with an unguessable
		// placeholder password.
		placeholder := fmt.Sprintf("%s-%d", googleUser.ID, time.Now().UnixNano())
		hashed, err := bcrypt.GenerateFromPassword([]byte(placeholder), bcrypt.DefaultCost)
		if err != nil {
			utils.InternalServerError(c, "Failed to create account", nil)
			return
		}

		customer = models.Customer{
			Email:       googleUser.Email,
			Password:    string(hashed),
			FirstName:   googleUser.GivenName,
			LastName:    googleUser.FamilyName,
			GoogleID:    googleUser.ID,
			LastLoginAt: time.Now(),
		}
		if err := config.DB.Create(&customer).Error; err != nil {
			utils.LogError("Failed to create Google customer: %v", err)
			utils.InternalServerError(c, "Failed to create account", nil)
			return
		}
	}

	if customer.IsBlocked {
		utils.Forbidden(c, "Account is blocked")
		return
	}

	mergeGuestCart(c, customer.ID)
	middleware.IssueCustomerSession(c, customer.ID)
	utils.LogInfo("Customer %d logged in via Google", customer.ID)
	utils.Success(c, "Login successful", gin.H{
		"customer": gin.H{
			"id":         customer.ID,
			"email":      customer.Email,
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
		},
	})
}
