package routes

import (
	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/controllers"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())
	router.Use(utils.CORSMiddleware())

	// Server-side session storage for the guest cart and applied coupon. The
	// login session itself is a separate signed cookie, not stored here.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24 * 7,
		Path:     "/",
		Secure:   cfg.IsProduction(),
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("shopsphere", store))

	// OAuth routes live outside the versioned API
	auth := router.Group("/auth")
	{
		auth.GET("/google/login", controllers.GoogleLogin)
		auth.GET("/google/callback", controllers.GoogleCallback)
	}

	// Referral landing links are short and unversioned
	router.GET("/r/:code", controllers.ReferralLanding)

	// API version group
	api := router.Group("/v1")
	{
		initUserRoutes(api)
		initAdminRoutes(api)
	}

	return router
}
