package controllers

import (
	"strconv"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
)

// GetProducts lists active, unblocked catalog items with optional search and
// category filtering.
func GetProducts(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	query := config.DB.Model(&models.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.is_active = ? AND categories.blocked = ?", true, false)

	if search := c.Query("search"); search != "" {
		query = query.Where("products.name ILIKE ?", "%"+search+"%")
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("products.category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		// Catalog reads degrade to an empty page rather than erroring.
		utils.SuccessWithPagination(c, "Products retrieved", []models.Product{}, 0, page, limit)
		return
	}

	var products []models.Product
	if err := query.Preload("Category").
		Order("products.id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.SuccessWithPagination(c, "Products retrieved", []models.Product{}, 0, page, limit)
		return
	}

	utils.SuccessWithPagination(c, "Products retrieved", products, total, page, limit)
}

// GetProductDetails returns a single product
func GetProductDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.Preload("Category").First(&product, id).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	utils.Success(c, "Product retrieved", gin.H{"product": product})
}

// ListCategories returns unblocked categories
func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Where("blocked = ?", false).Order("name ASC").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.Success(c, "Categories retrieved", gin.H{"categories": []models.Category{}})
		return
	}
	utils.Success(c, "Categories retrieved", gin.H{"categories": categories})
}
