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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"webprompt_server/config"
	"webprompt_server/internal/api"
	"webprompt_server/internal/db"
	"webprompt_server/internal/logger"
	"webprompt_server/internal/prompt"
)

func main() {
	// Load .env BEFORE viper reads the environment. A missing .env is normal
	// in deployed environments, so only complain about other errors.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	appLogger, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Cannot initialize logger: %v", err)
	}
	defer appLogger.Sync()

	// Dependencies. The datastore is optional and must not block startup;
	// its constructor absorbs connection failures.
	dbService := db.NewPostgresService(cfg, appLogger)
	composer := prompt.NewComposer()
	apiHandler := api.NewAPIHandler(composer, dbService, appLogger)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		appLogger.Info("Running in Gin debug mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Timeouts guard against slow clients holding connections open.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("Starting API server", "address", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("API server listen error", "error", err)
		}
		appLogger.Info("API server has stopped listening")
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	appLogger.Info("Received signal, shutting down server", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("API server forced shutdown", "error", err)
	} else {
		appLogger.Info("API server gracefully stopped")
	}
}
