package server

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ryanpavini/sistema-na-backend/internal/config"
)

func New(db *gorm.DB, cfg *config.Config) *fiber.App {
	app := fiber.New()

	SetupRoutes(app, db, cfg)

	return app
}
