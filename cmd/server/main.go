package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"proplist/docs"
	"proplist/internal/auth"
	"proplist/internal/cache"
	"proplist/internal/config"
	"proplist/internal/db"
	"proplist/internal/handler"
	"proplist/internal/mail"
	"proplist/internal/repository"
	"proplist/internal/router"
	"proplist/internal/service"
	"proplist/internal/storage"
)

// @title Property Listing API
// @version 1.0
// @description Property-listing backend with role-based auth, OTP password reset, and image upload.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables")
		db.Reset(gormDB)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	uploader, err := storage.NewS3Uploader(
		context.Background(),
		cfg.S3Region,
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3PublicBaseURL,
	)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.FromEmail)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	otpRepo := repository.NewOTPRepository(gormDB)
	locationRepo := repository.NewLocationRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, otpRepo, jwtService, mailer)
	propertyService := service.NewPropertyService(propertyRepo, locationRepo, cacheClient)
	locationService := service.NewLocationService(locationRepo, cacheClient)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService, uploader)
	locationHandler := handler.NewLocationHandler(locationService)
	adminHandler := handler.NewAdminHandler(userService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		propertyHandler,
		locationHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
