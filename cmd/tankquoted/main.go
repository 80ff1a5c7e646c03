package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/panelworks/tankquote/pkg/config"
	"github.com/panelworks/tankquote/pkg/domain/repositories"
	"github.com/panelworks/tankquote/pkg/engine"
	"github.com/panelworks/tankquote/pkg/infrastructure/repositories/jsoncatalog"
	"github.com/panelworks/tankquote/pkg/infrastructure/repositories/sqlcatalog"
	"github.com/panelworks/tankquote/pkg/interfaces/rest"
	"github.com/panelworks/tankquote/pkg/logging"
	"github.com/panelworks/tankquote/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	catalog, closeCatalog, err := openCatalog(cfg)
	if err != nil {
		logger.Fatal("failed to open part catalog", zap.Error(err))
	}
	if closeCatalog != nil {
		defer closeCatalog()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector("tankquote", registry)
	collector.CatalogSize.Set(float64(catalog.Len()))

	eng := engine.New(catalog, logger)
	handler := rest.NewHandler(eng, catalog, collector, logger, cfg.DefaultExchangeRate)
	router := rest.NewRouter(handler, collector, registry)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.ListenAddr),
			zap.String("catalog_driver", cfg.CatalogDriver),
			zap.Int("catalog_parts", catalog.Len()),
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Fatal("server failed", zap.Error(err))
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

// openCatalog builds the configured catalog backend. The returned close
// function may be nil for backends with nothing to release.
func openCatalog(cfg *config.Config) (repositories.PartCatalog, func() error, error) {
	switch cfg.CatalogDriver {
	case config.CatalogDriverSQLite:
		repo, err := sqlcatalog.Open(cfg.CatalogDBPath)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		repo, err := jsoncatalog.NewCatalogRepository(cfg.PricesPath, cfg.WeightsPath)
		if err != nil {
			return nil, nil, err
		}
		return repo, nil, nil
	}
}
