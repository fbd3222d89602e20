package controllers

import (
	"strconv"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
)

// AdminListCustomers returns customers with optional search
func AdminListCustomers(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	query := config.DB.Model(&models.Customer{})
	if search := c.Query("search"); search != "" {
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count customers: %v", err)
		utils.InternalServerError(c, "Failed to list customers", nil)
		return
	}

	var customers []models.Customer
	if err := query.Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&customers).Error; err != nil {
		utils.LogError("Failed to fetch customers: %v", err)
		utils.InternalServerError(c, "Failed to list customers", nil)
		return
	}

	utils.SuccessWithPagination(c, "Customers retrieved", customers, total, page, limit)
}

// AdminToggleCustomerBlock flips the blocked flag. Blocked customers cannot
// log in or use an existing session.
func AdminToggleCustomerBlock(c *gin.Context) {
	utils.LogInfo("AdminToggleCustomerBlock called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid customer ID", nil)
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.NotFound(c, "Customer not found")
		return
	}

	if err := config.DB.Model(&customer).Update("is_blocked", !customer.IsBlocked).Error; err != nil {
		utils.LogError("Failed to toggle block for customer %d: %v", customer.ID, err)
		utils.InternalServerError(c, "Failed to update customer", nil)
		return
	}

	utils.LogInfo("Customer %d block toggled to %v", customer.ID, !customer.IsBlocked)
	utils.Success(c, "Customer updated", gin.H{
		"customer": gin.H{
			"id":         customer.ID,
			"email":      customer.Email,
			"is_blocked": !customer.IsBlocked,
		},
	})
}
