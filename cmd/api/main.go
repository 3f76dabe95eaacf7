package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/jordansepetys/AibaTS/pkg/validator"

	"github.com/jordansepetys/AibaTS/internal/adapter/handler"
	"github.com/jordansepetys/AibaTS/internal/domain/repositories"
	"github.com/jordansepetys/AibaTS/internal/infrastructure/cache"
	"github.com/jordansepetys/AibaTS/internal/infrastructure/storage"
	"github.com/jordansepetys/AibaTS/internal/usecase/indexer"
	"github.com/jordansepetys/AibaTS/internal/usecase/query"
	"github.com/jordansepetys/AibaTS/internal/usecase/search"
	"github.com/jordansepetys/AibaTS/pkg/config"
)

// @title           Meeting Index API
// @version         1.0
// @description     Indexes meeting notes and transcripts per project and answers natural-language questions about them

// @host      localhost:8080
// @BasePath  /v1

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

	// Initialize snapshot cache
	var cacheStore cache.Store
	switch cfg.Cache.Type {
	case "redis":
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		cacheStore = cache.NewRedisStore(redisClient, logger)
	default:
		cacheStore = cache.NewMemoryStore()
	}

	// Initialize snapshot storage
	var snapshotStore repositories.SnapshotStore
	switch cfg.Storage.Type {
	case "minio":
		log.Println("📦 Connecting to MinIO...")
		snapshotStore, err = storage.NewMinIOSnapshotStore(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
	default:
		projectsDir := filepath.Join(cfg.Data.Dir, cfg.Index.ProjectsDir)
		snapshotStore = storage.NewFileSnapshotStore(projectsDir)
	}

	// Initialize artifact scanner over the notes and transcript directories
	scanner := storage.NewArtifactScanner(
		filepath.Join(cfg.Data.Dir, cfg.Data.NotesDir),
		filepath.Join(cfg.Data.Dir, cfg.Data.TranscriptsDir),
	)

	// Initialize query rules
	rules, err := query.LoadRules(cfg.Index.RulesPath)
	if err != nil {
		log.Fatalf("Failed to load query rules: %v", err)
	}
	parser := query.NewParser(rules)
	engine := search.NewEngine(search.DefaultWeights())

	// Initialize services
	log.Println("⚙️  Initializing services...")
	indexService := indexer.NewService(scanner, snapshotStore, cacheStore, cfg.Index.MaxKeywords, logger)
	searchService := search.NewService(
		snapshotStore, cacheStore, cfg.Cache.TTL,
		parser, engine, cfg.Index.DefaultMaxResults, logger,
	)

	// Initialize handlers
	meetingHandler := handler.NewMeetingHandler(searchService, logger)
	indexHandler := handler.NewIndexHandler(indexService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, indexHandler)
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
