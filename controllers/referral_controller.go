package controllers

import (
	"errors"
	"net/http"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/middleware"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Points granted when a referred signup is attributed.
const (
	referrerBonusPoints = 100
	referredBonusPoints = 50
)

// GetMyReferral returns the customer's referral code and share link,
// creating the code on first call. Repeat calls always return the same code.
func GetMyReferral(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		utils.Unauthorized(c, "Please login for access")
		return
	}

	code, err := allocateReferralCode(dbReferralCodeStore(), customer.ID)
	if err != nil {
		utils.LogError("Failed to ensure referral code for customer %d: %v", customer.ID, err)
		utils.InternalServerError(c, "Failed to generate referral code", nil)
		return
	}

	cfg, _ := config.LoadConfig()
	utils.Success(c, "Referral code retrieved", gin.H{
		"code": code,
		"link": cfg.SiteURL + "/r/" + code,
	})
}

// referralCodeStore abstracts the persistence operations code allocation
// needs, injectable so the get-or-create rules are testable without a store.
type referralCodeStore struct {
	forCustomer func(customerID uint) (string, bool, error)
	codeTaken   func(code string) (bool, error)
	insert      func(customerID uint, code string) error
}

func dbReferralCodeStore() referralCodeStore {
	return referralCodeStore{
		forCustomer: func(customerID uint) (string, bool, error) {
			var row models.ReferralCode
			err := config.DB.Where("customer_id = ?", customerID).First(&row).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return "", false, nil
				}
				return "", false, err
			}
			return row.Code, true, nil
		},
		codeTaken: func(code string) (bool, error) {
			var count int64
			err := config.DB.Model(&models.ReferralCode{}).Where("code = ?", code).Count(&count).Error
			return count > 0, err
		},
		insert: func(customerID uint, code string) error {
			return config.DB.Create(&models.ReferralCode{CustomerID: customerID, Code: code}).Error
		},
	}
}

// allocateReferralCode is the idempotent get-or-create for a customer's code:
// an existing code is always returned as-is, never regenerated. The
// generate-and-check loop is check-then-act and racy under concurrent signup;
// the unique constraints are the actual safety net, so a duplicate key on
// insert is caught and resolved rather than ignored.
func allocateReferralCode(store referralCodeStore, customerID uint) (string, error) {
	if code, found, err := store.forCustomer(customerID); err != nil {
		return "", err
	} else if found {
		return code, nil
	}

	for attempt := 0; attempt < 2; attempt++ {
		code, err := utils.NewUniqueReferralCode(store.codeTaken)
		if err != nil {
			return "", err
		}

		err = store.insert(customerID, code)
		if err == nil {
			return code, nil
		}
		if !utils.IsDuplicateKeyError(err) {
			return "", err
		}

		// Either a concurrent request created this customer's code, or the
		// generated code collided. Re-read for the former, loop for the
		// latter.
		if existing, found, readErr := store.forCustomer(customerID); readErr == nil && found {
			return existing, nil
		}
		utils.LogError("Referral code collision on insert for customer %d, retrying", customerID)
	}
	return "", utils.ConflictError("Could not allocate a referral code", nil)
}

// attributeReferral links a new signup to the owner of a referral code and
// credits both sides of the ledger.
func attributeReferral(newCustomerID uint, code string) error {
	var ref models.ReferralCode
	if err := config.DB.Where("code = ?", code).First(&ref).Error; err != nil {
		return utils.WrapError(err, "unknown referral code")
	}
	if ref.CustomerID == newCustomerID {
		return utils.BadRequestError("Self-referral is not allowed", nil)
	}

	referral := models.Referral{
		ReferrerCustomerID: ref.CustomerID,
		ReferredCustomerID: newCustomerID,
		Code:               ref.Code,
		Credited:           true,
	}
	if err := config.DB.Create(&referral).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			// Signup already attributed; never credit twice.
			return nil
		}
		return err
	}

	if err := utils.CreditPoints(config.DB, ref.CustomerID, referrerBonusPoints,
		models.LoyaltyEntryReferral, "Referral bonus", nil); err != nil {
		utils.LogError("Failed to credit referrer %d: %v", ref.CustomerID, err)
	}
	if err := utils.CreditPoints(config.DB, newCustomerID, referredBonusPoints,
		models.LoyaltyEntryReferral, "Welcome referral bonus", nil); err != nil {
		utils.LogError("Failed to credit referred customer %d: %v", newCustomerID, err)
	}

	utils.LogInfo("Referral attributed: customer %d referred by %d", newCustomerID, ref.CustomerID)
	return nil
}

// ReferralLanding handles a referral-link visit: remember the code for 30
// days and send the visitor to the storefront.
func ReferralLanding(c *gin.Context) {
	code := c.Param("code")

	var ref models.ReferralCode
	if err := config.DB.Where("code = ?", code).First(&ref).Error; err == nil {
		middleware.SetReferralCookie(c, ref.Code)
	} else {
		utils.LogInfo("Referral landing with unknown code: %s", code)
	}

	cfg, _ := config.LoadConfig()
	c.Redirect(http.StatusFound, cfg.SiteURL)
}

// AdminListReferrals returns referral attributions for the back-office
func AdminListReferrals(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	var total int64
	if err := config.DB.Model(&models.Referral{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count referrals: %v", err)
		utils.InternalServerError(c, "Failed to list referrals", nil)
		return
	}

	var referrals []models.Referral
	if err := config.DB.Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&referrals).Error; err != nil {
		utils.LogError("Failed to fetch referrals: %v", err)
		utils.InternalServerError(c, "Failed to list referrals", nil)
		return
	}

	utils.SuccessWithPagination(c, "Referrals retrieved", referrals, total, page, limit)
}
