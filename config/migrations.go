package config

import (
	"fmt"
	"time"

	"github.com/arjun-dev/shopsphere/models"
	"gorm.io/gorm"
)

// schemaMigration records an applied migration in schema_migrations.
type schemaMigration struct {
	ID        string `gorm:"primaryKey"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string { return "schema_migrations" }

type migration struct {
	id  string
	run func(tx *gorm.DB) error
}

// The full, ordered migration set. Schema changes happen here and only here,
// applied once at startup; request handlers never alter the schema.
var migrations = []migration{
	{
		id: "001_base_tables",
		run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&models.Customer{},
				&models.Admin{},
				&models.Category{},
				&models.Product{},
				&models.CartItem{},
				&models.Order{},
				&models.OrderItem{},
			)
		},
	},
	{
		id: "002_promotions",
		run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&models.Promotion{}, &models.PromotionItem{})
		},
	},
	{
		id: "003_coupons",
		run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&models.Coupon{}, &models.CouponRedemption{})
		},
	},
	{
		id: "004_loyalty_referrals",
		run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&models.LoyaltyEntry{}, &models.ReferralCode{}, &models.Referral{})
		},
	},
}

// RunMigrations applies every migration not yet recorded in schema_migrations,
// in order, each inside its own transaction.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("failed to prepare schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var applied int64
		if err := db.Model(&schemaMigration{}).Where("id = ?", m.id).Count(&applied).Error; err != nil {
			return fmt.Errorf("failed to check migration %s: %w", m.id, err)
		}
		if applied > 0 {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.run(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{ID: m.id, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", m.id, err)
		}
	}
	return nil
}
