package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hardware-ai-orchestrator/config"
	_ "hardware-ai-orchestrator/docs" // Swagger docs
	"hardware-ai-orchestrator/internal/catalog"
	"hardware-ai-orchestrator/internal/httpserver"
	"hardware-ai-orchestrator/internal/knowledge"
	"hardware-ai-orchestrator/internal/metrics"
	"hardware-ai-orchestrator/pkg/log"
)

// @title       Hardware AI Orchestrator API
// @description Query classification and model routing engine for hardware engineering questions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Hardware AI Orchestrator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Routing catalog
	active := catalog.Default()
	if cfg.Routing.CatalogFile != "" {
		active, err = catalog.LoadFile(cfg.Routing.CatalogFile)
		if err != nil {
			logger.Fatalf(ctx, "Invalid catalog file %s: %v", cfg.Routing.CatalogFile, err)
		}
		logger.Infof(ctx, "Loaded catalog %s from %s", active.Version, cfg.Routing.CatalogFile)
	}

	store, err := catalog.NewStore(active)
	if err != nil {
		logger.Fatalf(ctx, "Invalid routing catalog: %v", err)
	}

	// 4. Telemetry and feedback tracking
	exporter := metrics.NewExporter()
	tracker, err := metrics.NewAccuracyTracker(cfg.Feedback.WindowSize)
	if err != nil {
		logger.Fatalf(ctx, "Accuracy tracker: %v", err)
	}

	// 5. Knowledge retrieval (optional)
	var retriever knowledge.Retriever
	if cfg.Knowledge.Enabled {
		ttl, ttlErr := time.ParseDuration(cfg.Knowledge.CacheTTL)
		if ttlErr != nil {
			logger.Warnf(ctx, "Invalid knowledge cache TTL %q, using 5m: %v", cfg.Knowledge.CacheTTL, ttlErr)
			ttl = 5 * time.Minute
		}
		retriever = knowledge.NewCachedRetriever(knowledge.NewRepository(), cfg.Knowledge.CacheSize, ttl)
		logger.Info(ctx, "Knowledge retrieval enabled")
	}

	// 6. Catalog hot reload on SIGHUP
	if cfg.Routing.CatalogFile != "" {
		go reloadOnSighup(ctx, logger, store, exporter, cfg.Routing.CatalogFile)
	}

	// 7. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Store:       store,
		Retriever:   retriever,
		Exporter:    exporter,
		Tracker:     tracker,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
	logger.Info(ctx, "Shutdown complete")
}

// reloadOnSighup swaps in a freshly loaded catalog on SIGHUP. A file
// that fails validation is rejected and the active snapshot stays.
func reloadOnSighup(ctx context.Context, logger log.Logger, store *catalog.Store, exporter *metrics.Exporter, path string) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			next, err := catalog.LoadFile(path)
			if err != nil {
				exporter.RecordReload(false)
				logger.Errorf(ctx, "Catalog reload rejected: %v", err)
				continue
			}
			if err := store.Replace(next); err != nil {
				exporter.RecordReload(false)
				logger.Errorf(ctx, "Catalog reload rejected: %v", err)
				continue
			}
			exporter.RecordReload(true)
			logger.Infof(ctx, "Catalog reloaded, now serving version %s", next.Version)
		}
	}
}
