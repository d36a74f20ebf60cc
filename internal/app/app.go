package app

import (
	"fmt"

	"servis_backend/database"
	"servis_backend/internal/auth"
	"servis_backend/internal/config"
	"servis_backend/internal/handlers"
	"servis_backend/internal/logger"
	"servis_backend/internal/middleware"
	"servis_backend/internal/repositories"
	"servis_backend/internal/routes"
	"servis_backend/internal/services"
	"servis_backend/internal/storage"
	"servis_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := database.SeedUsers(gormDB); err != nil {
		logger.Fatal("Failed to seed users", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full Gin engine: storage, repositories, services,
// handlers and routes. Tests call it directly against their own DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	userRepo := repositories.NewUserRepository()
	pesananRepo := repositories.NewPesananRepository()

	authService := services.NewAuthService(userRepo, tokens)
	pesananService := services.NewPesananService(pesananRepo, storageInstance, services.UploadConfig{
		MaxSize:           cfg.Upload.MaxSize,
		AllowedExtensions: cfg.Upload.AllowedExtensions,
		UploadDir:         "uploads",
	})

	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, authService),
		PesananHandler: handlers.NewPesananHandler(baseHandler, pesananService),
	}

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, tokens, cfg)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(db))

	return router
}
