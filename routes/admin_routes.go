package routes

import (
	"github.com/arjun-dev/shopsphere/controllers"
	"github.com/arjun-dev/shopsphere/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all back-office routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)
		admin.POST("/logout", controllers.AdminLogout)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			// Customer management
			admin.GET("/customers", controllers.AdminListCustomers)
			admin.PATCH("/customers/:id/block", controllers.AdminToggleCustomerBlock)

			// Category management
			admin.POST("/categories", controllers.AdminCreateCategory)
			admin.PUT("/categories/:id", controllers.AdminUpdateCategory)
			admin.DELETE("/categories/:id", controllers.AdminDeleteCategory)

			// Product management
			admin.POST("/products", controllers.AdminCreateProduct)
			admin.PUT("/products/:id", controllers.AdminUpdateProduct)
			admin.DELETE("/products/:id", controllers.AdminDeleteProduct)

			// Promotion management
			admin.POST("/promotions", controllers.CreatePromotion)
			admin.GET("/promotions", controllers.ListPromotions)
			admin.PUT("/promotions/:id", controllers.UpdatePromotion)
			admin.DELETE("/promotions/:id", controllers.DeletePromotion)

			// Coupon management
			admin.POST("/coupons", controllers.CreateCoupon)
			admin.GET("/coupons", controllers.ListCoupons)
			admin.PUT("/coupons/:id", controllers.UpdateCoupon)
			admin.DELETE("/coupons/:id", controllers.DeleteCoupon)

			// Order management
			admin.GET("/orders", controllers.AdminListOrders)
			admin.PATCH("/orders/:id/status", controllers.AdminUpdateOrderStatus)

			// Loyalty and referrals
			admin.GET("/points", controllers.AdminLookupPoints)
			admin.GET("/referrals", controllers.AdminListReferrals)

			// Reports
			admin.GET("/reports/sales", controllers.AdminSalesReport)
			admin.GET("/reports/sales/export", controllers.AdminSalesReportExport)
		}
	}
}
