package main

import (
	"log"

	"github.com/ryanpavini/sistema-na-backend/internal/admin"
	"github.com/ryanpavini/sistema-na-backend/internal/config"
	"github.com/ryanpavini/sistema-na-backend/internal/database"
	"github.com/ryanpavini/sistema-na-backend/internal/server"
)

func main() {
	cfg := config.Load()

	if err := cfg.ValidateJWTSecret(); err != nil {
		log.Fatal("❌ JWT Configuration Error: ", err)
	}
	log.Println("✅ JWT secret validated")

	if cfg.APIKey == "" {
		log.Println("⚠️  API_KEY is not set; every request will be rejected")
	}

	requiredEnvVars := map[string]string{
		"DB_HOST":     cfg.DBHost,
		"DB_NAME":     cfg.DBName,
		"DB_USER":     cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
	}

	for key, value := range requiredEnvVars {
		if value == "" {
			log.Fatalf("❌ Required environment variable %s is not set", key)
		}
	}
	log.Println("✅ Required environment variables validated")

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("❌ Database connection failed: ", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("❌ Migration failed: ", err)
	}
	log.Println("✅ Database migrated successfully")

	if err := admin.SeedSuperAdmin(db, cfg); err != nil {
		log.Fatal("❌ Failed to seed super admin: ", err)
	}

	app := server.New(db, cfg)

	log.Printf("🚀 Server starting on %s", cfg.ServerAddr)
	if err := app.Listen(cfg.ServerAddr); err != nil {
		log.Fatal("❌ Failed to start server: ", err)
	}
}
