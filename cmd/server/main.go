package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SanthiIla22/Ai-travel-mate-project/internal/app"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/config"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/handler"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/logger"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/places"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/repository/mongodb"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/service"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	logger.Setup()

	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before datastores so we can instrument them).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			logrus.WithError(err).Error("failed to initialize New Relic")
		} else {
			logrus.Infof("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize MongoDB. Persistence is best-effort: without it the service
	// still plans trips, it just stops storing records.
	mongoClient, err := app.NewMongoClient(ctx, cfg.Mongo, nrApp)
	if err != nil {
		logrus.WithError(err).Warn("mongodb unavailable, continuing without persistence")
		mongoClient = nil
	} else {
		logrus.Info("Connected to MongoDB")
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logrus.WithError(err).Error("failed to disconnect mongodb")
			}
		}()
	}

	// Initialize Redis. It only backs idempotent replays, so a missing Redis
	// just disables that middleware.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		logrus.WithError(err).Warn("redis unavailable, idempotent replays disabled")
		redisClient = nil
	} else {
		logrus.Info("Connected to Redis")
		defer redisClient.Close()
	}

	// Wire dependencies.
	server := wireServer(mongoClient, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(mongoClient *mongo.Client, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize the trip store; a nil client yields a disabled store.
	tripStore := mongodb.NewTripStore(mongoClient, cfg.Mongo.Database)

	// Initialize the places client.
	placesClient := places.NewClient(cfg.Places)

	// Initialize services.
	notificationService := service.NewNotificationService()
	plannerService := service.NewTripPlannerService(placesClient, tripStore, notificationService)

	// Initialize handlers.
	tripHandler := handler.NewTripHandler(plannerService)
	placesHandler := handler.NewPlacesHandler(plannerService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		TripHandler:   tripHandler,
		PlacesHandler: placesHandler,
		RedisClient:   redisClient,
		NewRelicApp:   nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
