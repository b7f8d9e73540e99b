// ABOUTME: Main entry point for the Opportunity Discovery API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opportunity-discovery-api/api"
	"opportunity-discovery-api/api/handlers"
	"opportunity-discovery-api/core/discovery"
	"opportunity-discovery-api/core/feeds"
	"opportunity-discovery-api/core/interfaces"
	"opportunity-discovery-api/core/services"
	"opportunity-discovery-api/core/workers"
	"opportunity-discovery-api/infrastructure/cache/memory"
	"opportunity-discovery-api/infrastructure/cache/redis"
	stdhttp "opportunity-discovery-api/infrastructure/http/standard"
	"opportunity-discovery-api/infrastructure/logger/logrusadapter"
	"opportunity-discovery-api/infrastructure/storage/sqlite"
	"opportunity-discovery-api/pkg/config"
	"opportunity-discovery-api/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrusadapter.NewLogger(logrusadapter.Options{
		Level:      cfg.Log.Level,
		JSONFormat: cfg.Log.JSONFormat,
	})
	logger.Info("Starting Opportunity Discovery API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Open storage
	store, err := sqlite.NewStore(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	discoveryService := discovery.NewService(deps, discovery.Config{
		APIKey:    cfg.Search.APIKey,
		Endpoint:  cfg.Search.Endpoint,
		RateLimit: cfg.Search.RateLimit,
	})
	feedService := feeds.NewService(deps)
	enrichmentService := services.NewEnrichmentService(deps)

	flags := featureflags.NewEnvManager("")
	flagCtx := context.Background()

	enrichmentWorker := workers.NewEnrichmentWorker(enrichmentService, workers.WorkerConfig{})
	if err := enrichmentWorker.Start(); err != nil {
		log.Fatalf("Failed to start enrichment worker: %v", err)
	}
	defer enrichmentWorker.Stop()

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		AdminToken: cfg.Server.AdminToken,
	}
	if flags.IsEnabled(flagCtx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = 100 // per IP per minute
		apiConfig.RateWindow = time.Minute
	}
	humaAPI, router := api.NewAPI(apiConfig)

	// Create and register handlers
	var prefetcher handlers.EnrichmentPrefetcher
	if flags.IsEnabled(flagCtx, featureflags.EnrichmentPrefetch) {
		prefetcher = enrichmentWorker
	}
	discoveryHandler := handlers.NewDiscoveryHandler(discoveryService, store.Companies(), prefetcher)
	discoveryHandler.RegisterRoutes(humaAPI)

	opportunityHandler := handlers.NewOpportunityHandler(store.Opportunities(), store.Companies())
	opportunityHandler.RegisterRoutes(humaAPI)

	if flags.IsEnabled(flagCtx, featureflags.FeedIngestion) {
		feedHandler := handlers.NewFeedHandler(feedService)
		feedHandler.RegisterRoutes(humaAPI)
	}

	enrichHandler := handlers.NewEnrichHandler(enrichmentService)
	enrichHandler.RegisterRoutes(humaAPI)

	if flags.IsEnabled(flagCtx, featureflags.URLValidation) {
		validateHandler := handlers.NewValidateHandler(httpClient)
		validateHandler.RegisterRoutes(humaAPI)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
