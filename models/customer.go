package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a storefront shopper
type Customer struct {
	gorm.Model
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	IsBlocked   bool      `json:"is_blocked" gorm:"default:false"`
	GoogleID    string    `gorm:"default:null" json:"-"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// Admin represents a back-office operator
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}
