// Command api is the sports tournament aggregator HTTP server.
//
// Usage:
//
//	sportsagg-api
//	GEMINI_API_KEY=... API_PORT=8080 sportsagg-api

// @title Sports Tournament Aggregator API
// @version 1.0.0
// @description Upcoming tournaments per sport, sourced from Gemini with mock-data fallback.
// @host localhost:5000
// @BasePath /
// @schemes http https
// @contact.name Sports Aggregator
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/albapepper/sportsagg/internal/aggregator"
	"github.com/albapepper/sportsagg/internal/api"
	"github.com/albapepper/sportsagg/internal/config"
	"github.com/albapepper/sportsagg/internal/gemini"
	"github.com/albapepper/sportsagg/internal/metrics"

	_ "github.com/albapepper/sportsagg/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	cfg := config.Load()
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	if cfg.HasPlaceholderKey() {
		logger.Warn("Gemini API key not properly configured. Using mock data mode.")
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
	}

	var gen aggregator.Generator
	if cfg.GeminiConfigured() {
		gen = gemini.NewClient(cfg.GeminiURL, cfg.GeminiAPIKey, cfg.GeminiTimeout, logger)
	}
	svc := aggregator.NewService(gen, cfg, clockwork.NewRealClock(), m, logger)

	router := api.NewRouter(svc, cfg, m, logger)

	// WriteTimeout must outlast the Gemini call.
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.GeminiTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting sports aggregator API",
			"addr", addr,
			"environment", cfg.Environment,
			"live", svc.Live(),
			"timezone", config.TimezoneName,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
