package controllers

import (
	"github.com/arjun-dev/shopsphere/models"
	"github.com/gin-gonic/gin"
)

// currentCustomer pulls the authenticated customer set by the auth middleware.
func currentCustomer(c *gin.Context) (models.Customer, bool) {
	val, exists := c.Get("customer")
	if !exists {
		return models.Customer{}, false
	}
	customer, ok := val.(models.Customer)
	return customer, ok
}

// currentAdmin pulls the authenticated admin set by the admin middleware.
func currentAdmin(c *gin.Context) (models.Admin, bool) {
	val, exists := c.Get("admin")
	if !exists {
		return models.Admin{}, false
	}
	admin, ok := val.(models.Admin)
	return admin, ok
}
