package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/ryanpavini/sistema-na-backend/internal/admin"
	"github.com/ryanpavini/sistema-na-backend/internal/auth"
	"github.com/ryanpavini/sistema-na-backend/internal/config"
	"github.com/ryanpavini/sistema-na-backend/internal/event"
	"github.com/ryanpavini/sistema-na-backend/internal/mailer"
	"github.com/ryanpavini/sistema-na-backend/internal/meeting"
	"github.com/ryanpavini/sistema-na-backend/internal/secretariat"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-API-Key",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// The API key gate runs for every route, before authentication.
	app.Use(auth.APIKeyProtected(cfg))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "API is running",
		})
	})

	store := admin.NewStore(db)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret)
	authSvc := auth.NewService(store, tokens, mailer.New(cfg), cfg.FrontendURL)

	authHandler := auth.NewHandler(authSvc)
	adminHandler := admin.NewHandler(store, authSvc, cfg.SuperAdminEmail)
	eventHandler := event.NewHandler(event.NewService(db))
	meetingHandler := meeting.NewHandler(meeting.NewService(db))
	secretariatHandler := secretariat.NewHandler(secretariat.NewService(db))

	protected := auth.Protected(tokens)

	// Sessions & credential lifecycle
	app.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), authHandler.Login)
	app.Post("/refresh-token", authHandler.Refresh)
	app.Post("/forgot-password", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 15 * time.Minute,
	}), authHandler.ForgotPassword)
	app.Post("/reset-password", authHandler.ResetPassword)
	app.Post("/change-password", protected, authHandler.ChangePassword)

	// Admin management
	app.Post("/admins", adminHandler.Invite)
	app.Get("/admins", protected, adminHandler.List)
	app.Put("/admins/:id", protected, adminHandler.Update)
	app.Delete("/admins/:id", protected, adminHandler.Delete)

	// Events
	app.Post("/events", protected, eventHandler.Create)
	app.Get("/events", eventHandler.List)
	app.Get("/events/next", eventHandler.GetNext)
	app.Get("/events/:id", eventHandler.GetOne)
	app.Put("/events/:id", protected, eventHandler.Update)
	app.Delete("/events/:id", protected, eventHandler.Delete)

	// Meetings
	app.Post("/meetings", protected, meetingHandler.Create)
	app.Get("/meetings", meetingHandler.List)
	app.Get("/meetings/:id", meetingHandler.GetOne)
	app.Put("/meetings/:id", protected, meetingHandler.Update)
	app.Delete("/meetings/:id", protected, meetingHandler.Delete)

	// Secretariat ledger
	app.Post("/secretariat", protected, secretariatHandler.Create)
	app.Get("/secretariat/latest", secretariatHandler.GetLatest)
}
