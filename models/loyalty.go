package models

import "time"

// Loyalty entry types
const (
	LoyaltyEntryEarn     = "earn"
	LoyaltyEntryRedeem   = "redeem"
	LoyaltyEntryReferral = "referral"
	LoyaltyEntryAdjust   = "adjust"
)

// LoyaltyEntry is an append-only ledger row. The redeemable balance for a
// customer is the sum of Points over their entries; redemptions are stored
// as negative points.
type LoyaltyEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"index;not null" json:"customer_id"`
	Points      int       `json:"points"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	OrderID     *uint     `json:"order_id"`
	CreatedAt   time.Time `json:"created_at"`
}
