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

	"ldclash-backend/internal/config"
	"ldclash-backend/internal/handlers"
	"ldclash-backend/internal/middleware"
	"ldclash-backend/internal/router"
	"ldclash-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting LD Clash...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	gemini, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiConcurrentReqs)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer gemini.Close()
	log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)

	// ──── Step 3: Initialize Handlers ────
	sessions := middleware.NewSessionAuth(cfg.SessionSecret)
	upstreamTimeout := time.Duration(cfg.UpstreamTimeoutSecs) * time.Second
	chatHandler := handlers.NewChatHandler(gemini, upstreamTimeout)
	authHandler := handlers.NewAuthHandler(cfg.SitePassword, cfg.SitePasswordHash, sessions, cfg.Env == "production")

	if cfg.BasicAuthEnabled() {
		log.Println("✓ Basic-auth edge gate enabled")
	}
	if cfg.PasswordGateEnabled() {
		log.Println("✓ Site password gate enabled")
	}

	// ──── Step 4: Start HTTP Server ────
	r := router.New(cfg, chatHandler, authHandler, sessions)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// The write timeout must outlive the upstream completion call.
		WriteTimeout: upstreamTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ LD Clash ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
