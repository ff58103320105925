package admin

import (
	"log"

	"github.com/ryanpavini/sistema-na-backend/internal/auth"
	"github.com/ryanpavini/sistema-na-backend/internal/config"
	"github.com/ryanpavini/sistema-na-backend/internal/models"
	"gorm.io/gorm"
)

// SeedSuperAdmin creates the configured super admin on an empty database so
// the system is never bootstrapped without a working account. Runs once; a
// populated admin table is left alone.
func SeedSuperAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SuperAdminPassword)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Name:     "Root Admin",
		Email:    cfg.SuperAdminEmail,
		Password: &hash,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Super admin seeded (%s)", cfg.SuperAdminEmail)
	return nil
}
