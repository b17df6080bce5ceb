package database

import (
	"reddybook/internal/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "20250601_create_settings",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Setting{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("settings")
			},
		},
		{
			ID: "20250601_create_betting_sites",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.ReferralSite{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("betting_sites")
			},
		},
		{
			ID: "20250601_create_user_submissions",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Submission{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("user_submissions")
			},
		},
		{
			ID: "20250615_create_identities_and_admin_users",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Identity{}, &models.AdminUser{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("admin_users", "identities")
			},
		},
	}
}

// Migrate applies every pending migration.
func Migrate(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations()).Migrate()
}

// RollbackLast reverts the most recently applied migration.
func RollbackLast(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations()).RollbackLast()
}
