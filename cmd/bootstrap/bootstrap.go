package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorhub-api/config"
	deliveryHttp "doctorhub-api/internal/delivery/http"
	"doctorhub-api/internal/delivery/http/handler"
	"doctorhub-api/internal/delivery/http/middleware"
	"doctorhub-api/internal/domain/repository"
	"doctorhub-api/internal/infrastructure/cache"
	"doctorhub-api/internal/infrastructure/database"
	repositoryImpl "doctorhub-api/internal/repository"
	"doctorhub-api/internal/service"
	"doctorhub-api/internal/usecase"
	"doctorhub-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.Log)
	app.Log = log
	log.Info("Configuration loaded successfully")

	doctorRepo, err := app.newDoctorRepository()
	if err != nil {
		return nil, err
	}

	analyticsRepo := app.newSearchAnalyticsRepository()

	app.Server = initializeServer(cfg, log, doctorRepo, analyticsRepo)

	return app, nil
}

// setupLogger configures the standard logrus logger from config
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()

	if cfg.Format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// newDoctorRepository picks the record source named by DATA_SOURCE
func (app *App) newDoctorRepository() (repository.DoctorRepository, error) {
	cfg := app.Config

	switch cfg.Source.Kind {
	case config.DataSourceLocal:
		app.Log.Infof("Using local CSV source: %s", cfg.Source.CSVPath)
		return repositoryImpl.NewLocalDoctorRepository(cfg.Source.CSVPath, app.Log), nil
	case config.DataSourceDatabase:
		db, err := database.NewPostgresConnection(cfg.DB, app.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		app.Log.Info("Using database source")
		return repositoryImpl.NewDatabaseDoctorRepository(db), nil
	default:
		app.Log.Infof("Using remote CSV source: %s", cfg.Source.CSVURL)
		return repositoryImpl.NewRemoteDoctorRepository(cfg.Source.CSVURL, cfg.Source.FetchTimeout, app.Log), nil
	}
}

// newSearchAnalyticsRepository falls back to a no-op store when Redis is not configured or unreachable
func (app *App) newSearchAnalyticsRepository() repository.SearchAnalyticsRepository {
	if !app.Config.Redis.Enabled() {
		app.Log.Info("REDIS_HOST not set, search analytics disabled")
		return repositoryImpl.NewNoopSearchAnalyticsRepository()
	}

	redisClient, err := cache.NewRedisClient(app.Config.Redis, app.Log)
	if err != nil {
		app.Log.Warnf("Search analytics disabled: %v", err)
		return repositoryImpl.NewNoopSearchAnalyticsRepository()
	}
	app.RedisClient = redisClient

	return repositoryImpl.NewRedisSearchAnalyticsRepository(redisClient)
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	analyticsRepo repository.SearchAnalyticsRepository,
) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize services
	searchService := service.NewDoctorSearchService()

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, analyticsRepo, searchService, cfg.Analytics.TrendingLimit)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(doctorUsecase, log)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	searchHandler := handler.NewSearchHandler(doctorUsecase, customValidator)

	// Initialize middleware
	recoverMiddleware := middleware.NewRecoverMiddleware(log)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(healthHandler, doctorHandler, searchHandler, recoverMiddleware, loggingMiddleware, corsMiddleware)

	// Create server
	return &http.Server{
		Addr:         cfg.App.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on %s", app.Server.Addr)
		app.Log.Infof("Environment: %s, data source: %s", app.Config.App.Env, app.Config.Source.Kind)
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

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes the database and Redis connections, when open
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
