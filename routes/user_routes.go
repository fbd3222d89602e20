package routes

import (
	"github.com/arjun-dev/shopsphere/controllers"
	"github.com/arjun-dev/shopsphere/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all storefront routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.Register)
	router.POST("/login", controllers.Login)
	router.POST("/logout", controllers.Logout)
	router.POST("/forgot-password", controllers.ForgotPassword)
	router.POST("/reset-password", controllers.ResetPassword)

	// Catalog routes
	router.GET("/products", controllers.GetProducts)
	router.GET("/products/:id", controllers.GetProductDetails)
	router.GET("/categories", controllers.ListCategories)

	// The storefront banner endpoint; degrades rather than erroring
	router.GET("/promotion", controllers.GetCurrentPromotion)

	// Cart routes serve guests too; a session is attached when present
	cart := router.Group("/cart")
	cart.Use(middleware.OptionalCustomerAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("/add", controllers.AddToCart)
		cart.PUT("/update", controllers.UpdateCart)
		cart.DELETE("/remove", controllers.RemoveFromCart)
		cart.DELETE("/clear", controllers.ClearCart)
	}

	// Protected routes (require a customer session)
	protected := router.Group("/user")
	protected.Use(middleware.CustomerAuthMiddleware())
	{
		// Coupons apply against the current cart
		protected.POST("/coupon/apply", controllers.ApplyCoupon)
		protected.DELETE("/coupon/remove", controllers.RemoveCoupon)

		// Checkout and payment
		protected.POST("/checkout", controllers.Checkout)
		protected.POST("/payment/initiate", controllers.InitiatePayment)
		protected.POST("/payment/verify", controllers.VerifyPayment)

		// Orders
		protected.GET("/orders", controllers.ListMyOrders)
		protected.GET("/orders/:id", controllers.GetMyOrder)
		protected.GET("/orders/:id/invoice", controllers.DownloadInvoice)

		// Loyalty and referrals
		protected.GET("/points", controllers.GetMyPoints)
		protected.GET("/referral", controllers.GetMyReferral)
	}
}
