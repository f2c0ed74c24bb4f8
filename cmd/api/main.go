package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	"github.com/johnquangdev/engagement-tracker/internal/adapter/handler"
	"github.com/johnquangdev/engagement-tracker/internal/adapter/repository"
	"github.com/johnquangdev/engagement-tracker/internal/infrastructure/cache"
	"github.com/johnquangdev/engagement-tracker/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/engagement-tracker/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/engagement-tracker/internal/infrastructure/messaging"
	"github.com/johnquangdev/engagement-tracker/internal/infrastructure/storage"
	"github.com/johnquangdev/engagement-tracker/internal/usecase/auth"
	"github.com/johnquangdev/engagement-tracker/internal/usecase/engagement"
	"github.com/johnquangdev/engagement-tracker/internal/usecase/meeting"
	"github.com/johnquangdev/engagement-tracker/pkg/config"
	"github.com/johnquangdev/engagement-tracker/pkg/jwt"
	"github.com/johnquangdev/engagement-tracker/pkg/logger"
	pkgvalidator "github.com/johnquangdev/engagement-tracker/pkg/validator"
)

// dbConnectTimeout bounds the startup retries against Postgres
const dbConnectTimeout = 30 * time.Second

// @title           Engagement Tracker API
// @version         1.0
// @description     Tracks meeting participation and scores participant engagement.

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.Server.Environment)
	defer appLogger.Sync()

	ctx := context.Background()

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.ErrorHandler(appLogger)

	e.Use(httpmw.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))

	// Database
	appLogger.Info("📦 Connecting to database...")
	db, err := database.NewPostgresDB(ctx, cfg, dbConnectTimeout, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Production deployments manage schema with cmd/migrate
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			appLogger.Fatal("DB_AUTO_MIGRATE is enabled in production; run cmd/migrate instead")
		}
		n, err := database.Migrate(db, migrate.Up, 0)
		if err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
		appLogger.Info("🔄 Migrations applied", zap.Int("count", n))
	}

	// Revoked token store
	var tokens auth.TokenStore
	if cfg.Redis.Enabled {
		appLogger.Info("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(ctx, cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisStore.Close()
		tokens = redisStore
	} else {
		appLogger.Warn("⚠️  Redis disabled, revoked tokens are kept in memory")
		memoryStore := cache.NewMemoryStore()
		defer memoryStore.Close()
		tokens = memoryStore
	}

	// Optional report archive
	var archiver engagement.ReportArchiver
	var storagePing handler.HealthCheck
	if cfg.Storage.Enabled {
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			appLogger.Fatal("Failed to initialize report storage", zap.Error(err))
		}
		archiver = minioClient
		storagePing = minioClient.Ping
		appLogger.Info("✅ Report storage ready", zap.String("bucket", cfg.Storage.BucketName))
	}

	// Optional event publishing
	var publisher engagement.EventPublisher
	if cfg.NATS.Enabled {
		natsPublisher, err := messaging.NewPublisher(messaging.NATSConfig{
			URL:     cfg.NATS.URL,
			Token:   cfg.NATS.Token,
			Subject: cfg.NATS.Subject,
		}, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
		appLogger.Info("✅ Publishing engagement events", zap.String("subject", cfg.NATS.Subject))
	}

	// Use cases
	store := repository.NewStore(db)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	authService := auth.NewAuthService(store.Users(), jwtManager, tokens)
	meetingService := meeting.NewMeetingService(store)
	engagementService := engagement.NewService(store, publisher, archiver, appLogger)

	// Routes
	router := handler.NewRouter(
		cfg,
		handler.NewAuth(authService, appLogger),
		handler.NewMeetingHandler(meetingService, appLogger),
		handler.NewEngagementHandler(engagementService, cfg.Engagement.SilentThreshold, appLogger),
		authService,
	)
	if storagePing != nil {
		router.AddHealthCheck("storage", storagePing)
	}
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Address()
		appLogger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	appLogger.Info("✅ Server stopped gracefully")
}
