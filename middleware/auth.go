package middleware

import (
	"net/http"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
)

// Session cookie names. Customer and admin sessions are fully separate:
// independent codecs, independent cookies, no shared identity space.
const (
	CustomerSessionCookie = "session"
	AdminSessionCookie    = "admin_session"
	ReferralCookie        = "ref"
)

const (
	sessionCookieMaxAge  = 7 * 24 * 60 * 60
	referralCookieMaxAge = 30 * 24 * 60 * 60
)

var (
	customerCodec utils.SessionCodec
	adminCodec    utils.SessionCodec
	secureCookies bool
)

// Init builds the two session codecs from the loaded configuration. Must run
// before the router starts serving.
func Init(cfg *config.Config) {
	customerCodec = utils.NewSessionCodec(cfg.SessionSecret, cfg.IsProduction())
	adminCodec = utils.NewSessionCodec(cfg.SessionSecret, cfg.IsProduction())
	secureCookies = cfg.IsProduction()
}

// IssueCustomerSession signs a token for the customer and sets the session
// cookie.
func IssueCustomerSession(c *gin.Context, customerID uint) {
	setCookie(c, CustomerSessionCookie, customerCodec.Sign(customerID), sessionCookieMaxAge)
}

// ClearCustomerSession deletes the customer session cookie. Logout is purely
// client-side; a signed token stays valid until the secret rotates.
func ClearCustomerSession(c *gin.Context) {
	setCookie(c, CustomerSessionCookie, "", -1)
}

// IssueAdminSession signs a token for the admin and sets the admin cookie.
func IssueAdminSession(c *gin.Context, adminID uint) {
	setCookie(c, AdminSessionCookie, adminCodec.Sign(adminID), sessionCookieMaxAge)
}

// ClearAdminSession deletes the admin session cookie.
func ClearAdminSession(c *gin.Context) {
	setCookie(c, AdminSessionCookie, "", -1)
}

// SetReferralCookie remembers the referral code a visitor arrived with.
func SetReferralCookie(c *gin.Context, code string) {
	setCookie(c, ReferralCookie, code, referralCookieMaxAge)
}

// ClearReferralCookie removes the referral attribution cookie once consumed.
func ClearReferralCookie(c *gin.Context) {
	setCookie(c, ReferralCookie, "", -1)
}

func setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", secureCookies, true)
}

// CustomerAuthMiddleware resolves the customer session cookie to a customer
// row. Handlers past this point read the principal from the context and never
// guess identity from any other signal.
func CustomerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CustomerSessionCookie)
		if err != nil {
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		customerID, ok := customerCodec.Verify(token)
		if !ok {
			// Malformed, stale and forged tokens all look the same to the
			// caller.
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		var customer models.Customer
		if err := config.DB.First(&customer, customerID).Error; err != nil {
			utils.LogError("Session customer %d not found: %v", customerID, err)
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		if customer.IsBlocked {
			utils.LogError("Blocked customer attempted access: %d", customerID)
			utils.Forbidden(c, "Account is blocked")
			c.Abort()
			return
		}

		c.Set("customer", customer)
		c.Next()
	}
}

// OptionalCustomerAuth resolves the customer session when present but lets
// anonymous requests through. Used on cart routes, which also serve guests.
func OptionalCustomerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CustomerSessionCookie)
		if err == nil {
			if customerID, ok := customerCodec.Verify(token); ok {
				var customer models.Customer
				if err := config.DB.First(&customer, customerID).Error; err == nil && !customer.IsBlocked {
					c.Set("customer", customer)
				}
			}
		}
		c.Next()
	}
}

// AdminAuthMiddleware resolves the admin session cookie to an admin row.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminSessionCookie)
		if err != nil {
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		adminID, ok := adminCodec.Verify(token)
		if !ok {
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		var admin models.Admin
		if err := config.DB.First(&admin, adminID).Error; err != nil {
			utils.LogError("Session admin %d not found: %v", adminID, err)
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		if !admin.IsActive {
			utils.LogError("Inactive admin attempted access: %d", adminID)
			utils.Forbidden(c, "Admin account is inactive")
			c.Abort()
			return
		}

		c.Set("admin", admin)
		c.Next()
	}
}
