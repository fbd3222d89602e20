package controllers

import (
	"time"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
)

// GetCurrentPromotion returns the promotion the storefront should display
// right now. This read never 5xxs: the display degrades to "no promotion" on
// any store failure, and an empty promotions table is not an error.
func GetCurrentPromotion(c *gin.Context) {
	promotion, err := utils.ResolveCurrentPromotion(config.DB, time.Now())
	if err != nil {
		utils.LogError("Promotion resolution failed: %v", err)
		utils.Success(c, "No promotion available", gin.H{"promotion": nil})
		return
	}
	if promotion == nil {
		utils.Success(c, "No promotion available", gin.H{"promotion": nil})
		return
	}
	utils.Success(c, "Promotion retrieved", gin.H{"promotion": promotion})
}
