package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scholar-seeker.backend/internal/config"
	"scholar-seeker.backend/internal/infrastructure/models"
	"scholar-seeker.backend/internal/infrastructure/repositories"
	"scholar-seeker.backend/internal/infrastructure/seed"
	"scholar-seeker.backend/internal/interfaces/http/handlers"
	"scholar-seeker.backend/internal/interfaces/http/middleware"
	"scholar-seeker.backend/internal/usecases"
	"scholar-seeker.backend/pkg/jwt"
	"scholar-seeker.backend/pkg/logger"
	"scholar-seeker.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis. The engagement cache is advisory, so a missing Redis
	// degrades to direct database reads instead of failing startup.
	var engagementCache *redis.EngagementCache
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, engagement cache disabled", zap.Error(err))
	} else {
		engagementCache = redis.NewEngagementCache(cfg.Cache.EngagementTTL)
		logger.Info(context.Background(), "Redis initialized")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Scholarship{},
		&models.Profile{},
		&models.Bookmark{},
		&models.Application{},
	); err != nil {
		log.Printf("⚠️ Auto-migration failed: %v", err)
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	scholarshipRepo := repositories.NewScholarshipRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	bookmarkRepo := repositories.NewBookmarkRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	// Seed the catalog when empty so a fresh deployment is browsable
	seeder := seed.NewSeeder(scholarshipRepo)
	if inserted, err := seeder.SeedIfEmpty(context.Background()); err != nil {
		logger.Warn(context.Background(), "Catalog seeding failed", zap.Error(err))
	} else if inserted > 0 {
		logger.Info(context.Background(), "Catalog seeded", zap.Int("scholarships", inserted))
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, engagementCache)
	scholarshipUsecase := usecases.NewScholarshipUsecase(scholarshipRepo)
	profileUsecase := usecases.NewProfileUsecase(profileRepo)
	matchUsecase := usecases.NewMatchUsecase(scholarshipRepo, profileRepo)
	engagementUsecase := usecases.NewEngagementUsecase(bookmarkRepo, applicationRepo, scholarshipRepo, engagementCache)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	scholarshipHandler := handlers.NewScholarshipHandler(scholarshipUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	matchHandler := handlers.NewMatchHandler(matchUsecase)
	engagementHandler := handlers.NewEngagementHandler(engagementUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:        authHandler,
		scholarshipHandler: scholarshipHandler,
		profileHandler:     profileHandler,
		matchHandler:       matchHandler,
		engagementHandler:  engagementHandler,
		authMiddleware:     authMiddleware,
	})

	log.Printf("🚀 ScholarSeeker Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
