package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-records/config"
	deliveryHttp "hospital-records/internal/delivery/http"
	"hospital-records/internal/delivery/http/handler"
	"hospital-records/internal/delivery/http/middleware"
	"hospital-records/internal/infrastructure/cache"
	"hospital-records/internal/infrastructure/database"
	"hospital-records/internal/repository"
	"hospital-records/internal/service"
	"hospital-records/internal/usecase"
	"hospital-records/pkg/jwt"
	"hospital-records/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	PatientVisits usecase.PatientVisitUsecase
}

// LoadConfig sets up the logger and reads configuration. Commands that never
// touch the database (token issue, migrate) start here.
func LoadConfig() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, setupLogger("info"), fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.App.LogLevel)
	if cfg.JWT.InsecureDefault {
		log.Warn("JWT_SECRET is unset or uses the published development secret; QR tokens can be forged. Set JWT_SECRET before exposing this server.")
	}
	log.Info("Configuration loaded successfully")

	return cfg, log, nil
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, log, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Log: log}

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(cfg.DB, database.MigrateUp); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	// Redis only backs the analytics cache, so it stays optional
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		log.Info("Redis connected successfully")
	}

	app.initializeServer()

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return logrus.StandardLogger()
}

// initializeServer wires every layer and creates the HTTP server
func (app *App) initializeServer() {
	cfg, db, log := app.Config, app.DB, app.Log

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	visitRepo := repository.NewPatientVisitRepository()
	analyticsRepo := repository.NewVisitAnalyticsRepository()

	// Initialize services
	analyticsCache := service.NewAnalyticsCache(app.RedisClient, cfg.Analytics.CacheTTL, log)

	// Initialize usecases
	patientVisitUsecase := usecase.NewPatientVisitUsecase(db, log, visitRepo, jwtService, analyticsCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, visitRepo, jwtService)
	analyticsUsecase := usecase.NewAnalyticsUsecase(db, log, analyticsRepo, analyticsCache)
	app.PatientVisits = patientVisitUsecase

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientVisitUsecase, customValidator)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, log)
	healthHandler := handler.NewHealthHandler(db, app.RedisClient, cfg.App.Env)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		patientHandler,
		analyticsHandler,
		appointmentHandler,
		healthHandler,
		loggingMiddleware,
		corsMiddleware,
		cfg.App.StaticDir,
	)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
