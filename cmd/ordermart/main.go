package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/omarHussamm/mf-orders-app/internal/app/analytics"
	analyticsapi "github.com/omarHussamm/mf-orders-app/internal/app/api/analytics"
	catalogapi "github.com/omarHussamm/mf-orders-app/internal/app/api/catalog"
	orderapi "github.com/omarHussamm/mf-orders-app/internal/app/api/order"
	"github.com/omarHussamm/mf-orders-app/internal/app/api/util"
	"github.com/omarHussamm/mf-orders-app/internal/app/config"
	"github.com/omarHussamm/mf-orders-app/internal/app/order"
	"github.com/omarHussamm/mf-orders-app/internal/app/store"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	orders, catalog := store.Seed()
	orderSvc := order.NewOrderService(orders, catalog, order.NewValidator(catalog))
	analyticsSvc := analytics.NewAnalyticsService(orders)

	metrics := util.NewMetrics(prometheus.DefaultRegisterer)

	mux := chi.NewMux()
	mux.Use(util.RequestLogger(logger), metrics.Middleware)

	orderapi.NewOrderHandler(orderSvc, logger).RegisterRoutes()(mux)
	analyticsapi.NewAnalyticsHandler(analyticsSvc, logger).RegisterRoutes()(mux)
	catalogapi.NewCatalogHandler(catalog).RegisterRoutes()(mux)

	mux.Handle("/metrics", promhttp.Handler())

	// Unknown paths land on the list view, like the UI's fallback route.
	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/orders", http.StatusTemporaryRedirect)
	})

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", zap.String("address", cfg.Address))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
