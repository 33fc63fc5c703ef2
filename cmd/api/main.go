package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/summary-share/pkg/validator"

	apperrors "github.com/johnquangdev/summary-share/errors"
	"github.com/johnquangdev/summary-share/internal/adapter/handler"
	shareuse "github.com/johnquangdev/summary-share/internal/usecase/share"
	summaryuse "github.com/johnquangdev/summary-share/internal/usecase/summary"
	pkgai "github.com/johnquangdev/summary-share/pkg/ai"
	"github.com/johnquangdev/summary-share/pkg/config"
	"github.com/johnquangdev/summary-share/pkg/mailer"
)

// @title           Summary Share API
// @version         1.0
// @description     API for summarizing meeting transcripts and sharing summaries by email

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
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Summarization: Groq when a key is configured, deterministic local
	// fallback otherwise.
	log.Println("🤖 Initializing summarizer...")
	var provider summaryuse.Provider
	if cfg.Groq.APIKey != "" {
		provider = pkgai.NewGroqClient(&cfg.Groq)
		log.Printf("✅ Groq completion API enabled (model: %s)", cfg.Groq.Model)
	} else {
		log.Println("⚠️  GROQ_API_KEY not configured; using local fallback summarizer")
	}
	summaryService := summaryuse.NewService(provider, logger)

	// Email delivery: Resend when a well-formed key is configured, logged
	// no-op otherwise. A malformed key makes every share report failure.
	log.Println("📧 Initializing mailer...")
	sender, err := mailer.New(&cfg.Mail, logger)
	if err != nil {
		log.Printf("❌ Mailer misconfigured: %v", err)
		sender = mailer.NewFailingSender(apperrors.ErrMailerMisconfigured(err))
	}
	shareService := shareuse.NewService(sender, cfg.Mail.From, cfg.Mail.DefaultSubject, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	summarizeHandler := handler.NewSummarizeHandler(summaryService, logger)
	shareHandler := handler.NewShareHandler(shareService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, summarizeHandler, shareHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
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
