package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jaxzo84/five-parsecs-builder/internal/handlers"
	"github.com/jaxzo84/five-parsecs-builder/internal/middleware"
)

func main() {
	log.Println("Starting Crew Log PDF Service...")

	config := loadConfig()

	handler := handlers.New()

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// CORS: the crew builder is a local HTML form opened from disk or
	// any dev server, so every origin may call us.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", handler.HealthCheck)
	r.Post("/pdf", handler.RenderCrewLog)
	r.NotFound(handler.NotFound)

	srv := &http.Server{
		Addr:         config.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Listening on http://%s", config.Addr)
		log.Println("Open the crew builder in your browser, then click Export PDF")
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Server error: %v", err)

	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		// Give outstanding renders a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
			if err := srv.Close(); err != nil {
				log.Fatalf("Could not stop server: %v", err)
			}
		}
	}

	log.Println("Shutdown complete")
}

// Config holds application configuration
type Config struct {
	Addr string
}

// loadConfig loads configuration from environment variables
func loadConfig() Config {
	return Config{
		Addr: getEnv("CREWLOG_ADDR", "127.0.0.1:5678"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
