package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizito/internal/api"
	"quizito/internal/api/handlers"
	"quizito/internal/gemini"
	"quizito/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; rely on system environment variables then.
	_ = godotenv.Load()

	appEnv := os.Getenv("APP_ENV")
	log, err := logger.New(appEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The Gemini client is optional. Without an API key the service still
	// runs; every request uses the deterministic fallback engine.
	var generator handlers.Generator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := gemini.NewClient(ctx, apiKey)
		if err != nil {
			log.Warn("failed to initialize Gemini client, running fallback-only", "error", err)
		} else {
			defer client.Close()
			generator = client
			log.Info("Gemini client initialized", "model", gemini.ModelName)
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, running fallback-only")
	}

	if appEnv == "prod" || appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	handler := handlers.NewHandler(log, generator, gemini.ModelName)
	api.SetupRoutes(router, handler, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info("server listening", "port", port, "geminiAvailable", generator != nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", "error", err)
	}

	log.Info("server exited properly")
}
