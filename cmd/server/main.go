package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coach-planner-backend/internal/api/routes"
	"coach-planner-backend/internal/config"
	"coach-planner-backend/internal/database"
	"coach-planner-backend/internal/logger"
	"coach-planner-backend/internal/metrics"
	"coach-planner-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "coach-planner-backend/docs" // This is needed for swag
)

//	@title			Coach Planner Backend API
//	@version		1.0
//	@description	Backend API for the youth football coaching planner: teams, players, training sessions, matches, season objectives, assistant chats and the recycle bin.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging and metrics
	logger.Setup(cfg.LogLevel, os.Stdout)
	metrics.Register()

	// Initialize state backend
	repo, closeRepo, err := openStateBackend(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize state backend:", err)
	}
	defer closeRepo()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(repo, cfg)

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithFields(logrus.Fields{
			"port":    port,
			"backend": cfg.StateBackend,
			"key":     cfg.StateKey,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	// event streams stay open until the client leaves, so shutdown is bounded
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("Server shutdown did not complete cleanly")
	}
}

// openStateBackend builds the repository selected by STATE_BACKEND and a
// function that releases its connections.
func openStateBackend(cfg *config.Config) (repository.StateRepositoryInterface, func(), error) {
	noop := func() {}

	switch cfg.StateBackend {
	case config.BackendMemory:
		logrus.Warn("Using in-memory state backend, data is lost on restart")
		return repository.NewMemoryStateRepository(cfg.StateMaxBytes), noop, nil

	case config.BackendFile:
		repo, err := repository.NewFileStateRepository(cfg.StateFileDir, cfg.StateMaxBytes)
		if err != nil {
			return nil, noop, err
		}
		return repo, noop, nil

	case config.BackendPostgres:
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			return nil, noop, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repository.NewStateRepository(db), closeDB, nil

	case config.BackendRedis:
		client, err := repository.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewRedisStateRepository(client), func() { _ = client.Close() }, nil
	}

	return nil, noop, fmt.Errorf("unsupported state backend %q", cfg.StateBackend)
}
