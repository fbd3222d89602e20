package controllers

import (
	"strconv"
	"time"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PromotionItemRequest is one line of a promotion create/update payload
type PromotionItemRequest struct {
	ProductID     *uint   `json:"product_id"`
	ProductName   string  `json:"product_name" binding:"required"`
	OverridePrice float64 `json:"override_price" binding:"required"`
}

// CreatePromotionRequest is the admin payload for a new promotion
type CreatePromotionRequest struct {
	Name      string                 `json:"name" binding:"required"`
	StartDate string                 `json:"start_date" binding:"required"`
	EndDate   string                 `json:"end_date" binding:"required"`
	Template  string                 `json:"template"`
	Config    string                 `json:"config"`
	IsActive  *bool                  `json:"is_active"`
	Items     []PromotionItemRequest `json:"items"`
}

// CreatePromotion creates a promotion with its line items
func CreatePromotion(c *gin.Context) {
	utils.LogInfo("CreatePromotion called")

	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		utils.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD", gin.H{"field": "start_date"})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		utils.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD", gin.H{"field": "end_date"})
		return
	}
	if endDate.Before(startDate) {
		utils.BadRequest(c, "end_date must not be before start_date", nil)
		return
	}

	promotion := models.Promotion{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Template:  req.Template,
		Config:    req.Config,
		IsActive:  true,
	}
	if req.IsActive != nil {
		promotion.IsActive = *req.IsActive
	}
	for _, item := range req.Items {
		promotion.Items = append(promotion.Items, models.PromotionItem{
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			OverridePrice: item.OverridePrice,
		})
	}

	if err := config.DB.Create(&promotion).Error; err != nil {
		utils.LogError("Failed to create promotion: %v", err)
		utils.InternalServerError(c, "Failed to create promotion", nil)
		return
	}

	utils.LogInfo("Promotion %d created with %d items", promotion.ID, len(promotion.Items))
	utils.Created(c, "Promotion created", gin.H{"promotion": promotion})
}

// ListPromotions returns all promotions for the back-office
func ListPromotions(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	var total int64
	if err := config.DB.Model(&models.Promotion{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count promotions: %v", err)
		utils.InternalServerError(c, "Failed to list promotions", nil)
		return
	}

	var promotions []models.Promotion
	if err := config.DB.Preload("Items").
		Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&promotions).Error; err != nil {
		utils.LogError("Failed to fetch promotions: %v", err)
		utils.InternalServerError(c, "Failed to list promotions", nil)
		return
	}

	utils.SuccessWithPagination(c, "Promotions retrieved", promotions, total, page, limit)
}

// UpdatePromotionRequest toggles or edits promotion metadata. Items are
// replaced wholesale when present.
type UpdatePromotionRequest struct {
	Name      *string                 `json:"name"`
	StartDate *string                 `json:"start_date"`
	EndDate   *string                 `json:"end_date"`
	IsActive  *bool                   `json:"is_active"`
	Items     *[]PromotionItemRequest `json:"items"`
}

// UpdatePromotion edits a promotion
func UpdatePromotion(c *gin.Context) {
	utils.LogInfo("UpdatePromotion called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid promotion ID", nil)
		return
	}

	var req UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var promotion models.Promotion
	if err := config.DB.First(&promotion, id).Error; err != nil {
		utils.NotFound(c, "Promotion not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			utils.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD", gin.H{"field": "start_date"})
			return
		}
		updates["start_date"] = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			utils.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD", gin.H{"field": "end_date"})
			return
		}
		updates["end_date"] = endDate
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&promotion).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Items != nil {
			if err := tx.Where("promotion_id = ?", promotion.ID).Delete(&models.PromotionItem{}).Error; err != nil {
				return err
			}
			for _, item := range *req.Items {
				row := models.PromotionItem{
					PromotionID:   promotion.ID,
					ProductID:     item.ProductID,
					ProductName:   item.ProductName,
					OverridePrice: item.OverridePrice,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		utils.LogError("Failed to update promotion %d: %v", promotion.ID, err)
		utils.InternalServerError(c, "Failed to update promotion", nil)
		return
	}

	if err := config.DB.Preload("Items").First(&promotion, promotion.ID).Error; err != nil {
		utils.LogError("Failed to reload promotion %d: %v", promotion.ID, err)
	}
	utils.Success(c, "Promotion updated", gin.H{"promotion": promotion})
}

// DeletePromotion removes a promotion, deleting its items first to satisfy
// referential integrity.
func DeletePromotion(c *gin.Context) {
	utils.LogInfo("DeletePromotion called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid promotion ID", nil)
		return
	}

	var promotion models.Promotion
	if err := config.DB.First(&promotion, id).Error; err != nil {
		utils.NotFound(c, "Promotion not found")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("promotion_id = ?", promotion.ID).Delete(&models.PromotionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&promotion).Error
	})
	if err != nil {
		utils.LogError("Failed to delete promotion %d: %v", promotion.ID, err)
		utils.InternalServerError(c, "Failed to delete promotion", nil)
		return
	}

	utils.LogInfo("Promotion %d deleted", promotion.ID)
	utils.Success(c, "Promotion deleted", nil)
}
