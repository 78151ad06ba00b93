package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/booknest/storefront/api/routes"
	"github.com/booknest/storefront/internal/catalog"
	"github.com/booknest/storefront/internal/checkout"
	"github.com/booknest/storefront/internal/orders"
	"github.com/booknest/storefront/internal/session"
	"github.com/booknest/storefront/pkg/config"
	"github.com/booknest/storefront/pkg/instance"
	"github.com/booknest/storefront/pkg/logger"
	"github.com/booknest/storefront/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront-api",
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	src, err := loadCatalog(cfg.Catalog)
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		os.Exit(1)
	}

	history, err := loadHistory(cfg.Catalog)
	if err != nil {
		logg.Error(context.Background(), "failed to load order history", err)
		os.Exit(1)
	}

	var (
		storefrontMetrics *metrics.Storefront
		metricsHandler    http.Handler
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		storefrontMetrics = metrics.NewStorefront(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	registry, err := session.NewRegistry(session.RegistryParams{
		Session: session.Params{
			Catalog: src,
			History: history,
			Settler: checkout.NewSimulatedSettler(cfg.Checkout.SettlementDelay),
			Logger:  logg,
			Metrics: storefrontMetrics,
		},
		IdleTTL:     cfg.Session.IdleTTL,
		MaxSessions: cfg.Session.MaxSessions,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create session registry", err)
		os.Exit(1)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := registry.Run(runCtx, 0); err != nil && !errors.Is(err, context.Canceled) {
			logg.Error(runCtx, "session sweeper stopped unexpectedly", err)
		}
	}()

	addr := ":" + cfg.App.Port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
		"books":    src.Len(),
	})
	logg.Info(ctx, "starting storefront api")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, src, registry, metricsHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Source, error) {
	if cfg.Path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(cfg.Path)
}

func loadHistory(cfg config.CatalogConfig) ([]orders.Order, error) {
	if cfg.OrderHistoryPath == "" {
		return orders.SampleHistory()
	}
	return orders.LoadHistoryFile(cfg.OrderHistoryPath)
}
