package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/config"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/handler"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/infra/cache"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/infra/client"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/infra/observability"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/infra/resilience"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("advisory_api_url", cfg.AdvisoryAPIURL),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("rates_cache_ttl", cfg.RatesCacheTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "finwise-advisor")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Cache ---
	ratesCache := cache.New[*domain.GoldRateSnapshot](cfg.RatesCacheTTL)

	// --- Resilience ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	cb := resilience.NewCircuitBreaker("advisory-gateway")
	bulkhead := resilience.NewBulkhead(cfg.MaxConcurrency)

	// --- Clients ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	advisoryClient := client.NewAdvisoryClient(httpClient, cfg.AdvisoryAPIURL, cfg.AdvisoryAPIKey, cb, resilienceCfg)
	placesClient := client.NewPlacesClient(httpClient, cfg.AdvisoryAPIURL, cfg.AdvisoryAPIKey, cb, resilienceCfg)
	ratesClient := client.NewRatesClient(httpClient, cfg.AdvisoryAPIURL, cfg.AdvisoryAPIKey, cb, resilienceCfg)

	// --- Services ---
	advisorSvc := service.NewAdvisor(
		advisoryClient,
		placesClient,
		ratesClient,
		ratesCache,
		bulkhead,
		metrics,
		logger,
		domain.Coordinates{Latitude: cfg.DefaultLatitude, Longitude: cfg.DefaultLongitude},
		cfg.RatesLocation,
	)

	// --- Router ---
	router := handler.NewRouter(advisorSvc, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
