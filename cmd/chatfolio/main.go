package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chatfolio/chatfolio/internal/api"
	"github.com/chatfolio/chatfolio/internal/backend"
	"github.com/chatfolio/chatfolio/internal/config"
	"github.com/chatfolio/chatfolio/internal/repository"
	"github.com/chatfolio/chatfolio/internal/resume"
	"github.com/chatfolio/chatfolio/internal/service"
	"github.com/chatfolio/chatfolio/internal/session"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database (chat sessions and resume documents)
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(db)
	resumeRepo := repository.NewResumeRepository(db)

	// Initialize the resume document store and session manager
	store := resume.NewStore(resumeRepo, logger)
	sessions := session.NewManager(sessionRepo, logger, cfg.Chat.Greeting)

	// Initialize the chat backend router and client
	router := backend.NewRouter(cfg.Providers.SiteURL, cfg.Providers.SiteTitle)
	client := backend.NewClient(cfg.Providers.ChatBaseURL,
		time.Duration(cfg.Providers.TimeoutSeconds)*time.Second)

	// Initialize the extraction orchestrator
	orchestrator := service.NewOrchestrator(cfg, sessions, store, router, client, logger)

	// Setup router
	engine := api.SetupRouter(orchestrator, api.RouterConfig{
		AllowOrigins: []string{"*"},
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting ChatFolio server",
			zap.String("address", cfg.Address()),
			zap.String("chat_backend", cfg.Providers.ChatBaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
