package utils

import (
	"github.com/arjun-dev/shopsphere/models"
	"gorm.io/gorm"
)

// RedeemablePoints sums the customer's loyalty ledger. Redemptions are stored
// as negative rows, so the plain sum is the redeemable balance.
func RedeemablePoints(db *gorm.DB, customerID uint) (int, error) {
	var balance *int
	err := db.Model(&models.LoyaltyEntry{}).
		Where("customer_id = ?", customerID).
		Select("SUM(points)").
		Scan(&balance).Error
	if err != nil {
		return 0, err
	}
	if balance == nil {
		return 0, nil
	}
	return *balance, nil
}

// CreditPoints appends an earn-side ledger entry.
func CreditPoints(db *gorm.DB, customerID uint, points int, entryType, description string, orderID *uint) error {
	if points <= 0 {
		return nil
	}
	return db.Create(&models.LoyaltyEntry{
		CustomerID:  customerID,
		Points:      points,
		Type:        entryType,
		Description: description,
		OrderID:     orderID,
	}).Error
}

// RedeemPoints appends a negative ledger entry for a redemption.
func RedeemPoints(db *gorm.DB, customerID uint, points int, orderID *uint) error {
	if points <= 0 {
		return nil
	}
	return db.Create(&models.LoyaltyEntry{
		CustomerID:  customerID,
		Points:      -points,
		Type:        models.LoyaltyEntryRedeem,
		Description: "Redeemed at checkout",
		OrderID:     orderID,
	}).Error
}
