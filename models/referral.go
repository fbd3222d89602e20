package models

import (
	"time"

	"gorm.io/gorm"
)

// ReferralCode is the one shareable code owned by a customer. Assignment is
// idempotent: once a customer has a code it is never regenerated.
type ReferralCode struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CustomerID uint           `gorm:"uniqueIndex;not null" json:"customer_id"`
	Code       string         `gorm:"uniqueIndex;not null" json:"code"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// Referral attributes a signup to the owner of a referral code.
type Referral struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	ReferrerCustomerID uint      `gorm:"index" json:"referrer_customer_id"`
	ReferredCustomerID uint      `gorm:"uniqueIndex" json:"referred_customer_id"`
	Code               string    `json:"code"`
	Credited           bool      `json:"credited" gorm:"default:false"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
