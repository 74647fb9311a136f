package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fairgrounds-admin/internal/application/services"
	"fairgrounds-admin/internal/config"
	httpHandler "fairgrounds-admin/internal/infrastructure/http"
	"fairgrounds-admin/internal/infrastructure/mongo"
	jwtutil "fairgrounds-admin/pkg/jwt"
	"fairgrounds-admin/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	logger.Init(&logger.Config{
		Level:       cfg.LogLevel,
		ServiceName: "fairgrounds-admin",
		Development: cfg.IsDevelopment(),
	})
	defer logger.Get().Sync()

	if envErr != nil {
		logger.Warn(".env file not found or could not be loaded")
	}

	logger.Info("starting fairgrounds admin API")

	mongoClient, err := mongo.NewMongoClient(&mongo.MongoConfig{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDatabase,
		Timeout:  cfg.MongoTimeout,
	})
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Close(); err != nil {
			logger.Error("error closing MongoDB connection", zap.Error(err))
		}
	}()

	logger.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	database := mongoClient.GetDatabase()

	// Repositories
	settingsRepo := mongo.NewMongoSettingsRepository(database)
	adminRepo := mongo.NewMongoAdminRepository(database)
	eventRepo := mongo.NewMongoEventRepository(database)
	vendorRepo := mongo.NewMongoVendorRepository(database)
	brandRepo := mongo.NewMongoBrandRepository(database)
	orderRepo := mongo.NewMongoOrderRepository(database)
	auditRepo := mongo.NewMongoAuditRepository(database)

	// Audit trail is best-effort and drained on shutdown.
	auditLogger := services.NewAuditLogger(auditRepo)

	// Services
	settingsService := services.NewSettingsService(settingsRepo, auditLogger)
	overviewService := services.NewOverviewService(eventRepo, vendorRepo, orderRepo)
	eventService := services.NewEventService(eventRepo, auditLogger)
	vendorService := services.NewVendorService(vendorRepo, brandRepo, auditLogger)

	router := httpHandler.NewRouter(httpHandler.RouterDeps{
		JWTManager: jwtutil.NewJWTManager(cfg.JWTSecret),
		Admins:     adminRepo,
		Settings:   httpHandler.NewSettingsController(settingsService),
		Overview:   httpHandler.NewOverviewController(overviewService),
		Events:     httpHandler.NewEventController(eventService),
		Vendors:    httpHandler.NewVendorController(vendorService),
	})

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	auditLogger.Stop()
	logger.Info("server stopped")
}
