package cmd

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
	"github.com/spf13/cobra"

	"sitesmith/internal/api"
	"sitesmith/internal/components"
	"sitesmith/internal/pipeline"
	"sitesmith/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP generation API",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	// --- Configuration Loading ---
	cfg, err := loadRuntimeConfig()
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// --- Dependency Initialization ---
	gen, err := newTextGenerator(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Cannot initialize text generation client: %v", err)
	}
	if gen == nil {
		log.Printf("WARN: No API key configured for provider %q. /api/generate will be unavailable.", cfg.LLMProvider)
	}

	builder := pipeline.NewBuilder(gen)
	renderer := components.NewRenderer(gen, cfg.ComponentCacheSize)

	// The project store is best-effort: generation still works without it,
	// results just aren't persisted.
	st, err := store.New(cfg.DatabasePath)
	if err != nil {
		log.Printf("WARN: Project store unavailable, generations will not be saved: %v", err)
		st = nil
	} else {
		defer st.Close()
	}

	llmTimeout := time.Duration(cfg.LLMTimeoutSeconds) * time.Second
	apiHandler := api.NewAPIHandler(builder, renderer, st, gen != nil, llmTimeout)

	// --- Start API Server ---
	// Select Gin mode based on an environment variable (e.g., APP_ENV=production)
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()        // Use gin.New() for more control over middleware
	router.Use(gin.Logger())   // Add structured logger middleware
	router.Use(gin.Recovery()) // Add panic recovery middleware

	api.RegisterRoutes(router, apiHandler) // Register API endpoints

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Set timeouts to prevent slow client attacks. The write timeout
		// must outlive the generation budget, which holds the response
		// open while every component is rendered.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: llmTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1) // Buffered channel
	// Notify channel on SIGINT or SIGTERM
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	// Block until a signal is received
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	// Create a context with timeout for shutdown
	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()

	// Attempt to gracefully shutdown the HTTP server
	log.Println("Shutting down API server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		// Error from closing listeners, or context timeout:
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}
