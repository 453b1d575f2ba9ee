package app

import (
	"fmt"
	"time"

	"devconnector_backend/internal/config"
	"devconnector_backend/internal/handlers"
	"devconnector_backend/internal/logger"
	"devconnector_backend/internal/middleware"
	"devconnector_backend/internal/models"
	"devconnector_backend/internal/repositories"
	"devconnector_backend/internal/routes"
	"devconnector_backend/internal/services"
	"devconnector_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(&models.User{}, &models.Profile{}, &models.Post{}); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	engine := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := engine.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers and returns the
// configured engine. Split out of Run so tests can serve it via httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	postRepo := repositories.NewPostRepository(gormDB)

	jwtTTL := time.Duration(cfg.JWT.TTL) * time.Second
	userService := services.NewUserService(userRepo, cfg.JWT.Secret, jwtTTL)
	profileService := services.NewProfileService(profileRepo, userRepo)
	postService := services.NewPostService(postRepo, userRepo)
	githubService := services.NewGithubService(cfg, nil)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		UserHandler:    handlers.NewUserHandler(base, userService),
		AuthHandler:    handlers.NewAuthHandler(base, userService, cfg.JWT.Secret),
		ProfileHandler: handlers.NewProfileHandler(base, profileService, githubService, cfg.JWT.Secret),
		PostHandler:    handlers.NewPostHandler(base, postService, cfg.JWT.Secret),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(engine, appHandlers)
	return engine
}
