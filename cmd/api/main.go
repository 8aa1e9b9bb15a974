package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/minutes-generator/pkg/validator"

	"github.com/johnquangdev/minutes-generator/internal/adapter/handler"
	"github.com/johnquangdev/minutes-generator/internal/infrastructure/cache"
	httpmw "github.com/johnquangdev/minutes-generator/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/minutes-generator/internal/infrastructure/storage"
	minutesuse "github.com/johnquangdev/minutes-generator/internal/usecase/minutes"
	pkgai "github.com/johnquangdev/minutes-generator/pkg/ai"
	"github.com/johnquangdev/minutes-generator/pkg/audio"
	"github.com/johnquangdev/minutes-generator/pkg/config"
	"github.com/johnquangdev/minutes-generator/pkg/executor"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Redis-backed rate limiting (optional)
	var rateLimitMW echo.MiddlewareFunc
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		limiter := cache.NewRateLimiter(redisClient, cfg.Redis.RateLimit, cfg.Redis.RateWindow)
		rateLimitMW = httpmw.RateLimit(limiter, logger)
		log.Printf("✅ Rate limiting enabled: %d requests per %s", cfg.Redis.RateLimit, cfg.Redis.RateWindow)
	} else {
		log.Println("⚠️  Redis disabled, rate limiting off")
	}

	// Initialize artifact archive (optional)
	var archive *storage.ArchiveStore
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to MinIO...")
		archive, err = storage.NewArchiveStore(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize archive store: %v", err)
		}
		log.Printf("✅ Artifact archive enabled: bucket %s", cfg.Storage.BucketName)
	}

	// Initialize AI clients and pipeline
	log.Println("🤖 Initializing AI components...")
	asmClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	nlpClient := pkgai.NewNLPClient(&cfg.NLP)
	converter := audio.NewFFmpegConverter(executor.New(), cfg.Upload.TempDir)

	minutesService := minutesuse.NewService(asmClient, converter, groqClient, nlpClient, logger)

	// Initialize minutes handler
	log.Println("📝 Initializing minutes handler...")
	minutesHandler := handler.NewMinutesController(minutesService, archive, cfg, logger)

	var archiveHandler *handler.ArchiveController
	if archive != nil {
		archiveHandler = handler.NewArchiveController(archive, logger)
	}

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, minutesHandler, archiveHandler, rateLimitMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
