package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"home-visit-planner/config"
	deliveryHttp "home-visit-planner/internal/delivery/http"
	"home-visit-planner/internal/delivery/http/handler"
	"home-visit-planner/internal/delivery/http/middleware"
	"home-visit-planner/internal/domain/gateway"
	"home-visit-planner/internal/infrastructure/cache"
	"home-visit-planner/internal/infrastructure/database"
	"home-visit-planner/internal/infrastructure/geocoder"
	"home-visit-planner/internal/repository"
	"home-visit-planner/internal/service"
	"home-visit-planner/internal/usecase"
	"home-visit-planner/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// The audit database is optional; without it the service stays stateless.
	if cfg.DB.Host != "" {
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
	} else {
		logrus.Info("No database configured, route audit trail disabled")
	}

	// Redis is optional; without it geocode lookups skip the cache.
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	} else {
		logrus.Info("No Redis configured, geocode cache disabled")
	}

	// Initialize all layers
	server := initializeServer(cfg, app.DB, app.RedisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// realClock provides the wall-clock date to both pipelines.
type realClock struct{}

func (realClock) Today() time.Time { return time.Now() }

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize geocoder, with redis lookaside cache when available
	var geo gateway.Geocoder = geocoder.NewNominatimClient(cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent, nil)
	if redisClient != nil {
		geo = geocoder.NewCachedGeocoder(geo, redisClient, log, cfg.Geocoder.CacheTTL)
	}

	clock := realClock{}

	// Initialize audit trail when a database is configured
	var auditService service.RouteAuditService
	if db != nil {
		auditRepo := repository.NewRouteAuditRepository()
		auditService = service.NewRouteAuditService(db, log, auditRepo)
	}

	// Initialize usecases
	enrichUsecase := usecase.NewEnrichPatientsUsecase(log, geo, clock, cfg.Geocoder.LookupDelay, cfg.Geocoder.LookupTimeout)
	capacityPlanner := service.NewDateSeededPlanner(cfg.Routing.CapacityMin, cfg.Routing.CapacityMax)
	planUsecase := usecase.NewPlanRouteUsecase(log, capacityPlanner, clock, cfg.Routing.RadiusKm, auditService)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(enrichUsecase, customValidator)
	routeHandler := handler.NewRouteHandler(planUsecase, customValidator)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(patientHandler, routeHandler, loggingMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server. The write timeout covers worst-case geocoding batches,
	// which are serialized at one lookup per second.
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
