package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scholar-seeker.backend/internal/config"
	"scholar-seeker.backend/internal/infrastructure/models"
	"scholar-seeker.backend/internal/infrastructure/repositories"
	"scholar-seeker.backend/internal/infrastructure/seed"
	"scholar-seeker.backend/pkg/logger"
)

// Seeds the scholarship catalog into an empty database. Safe to run twice;
// a non-empty catalog is left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Scholarship{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seeder := seed.NewSeeder(repositories.NewScholarshipRepository(db))
	inserted, err := seeder.SeedIfEmpty(context.Background())
	if err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}

	if inserted == 0 {
		log.Println("Catalog already populated, nothing to do")
		return
	}
	log.Printf("Seeded %d scholarships", inserted)
}
