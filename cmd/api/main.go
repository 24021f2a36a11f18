package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/munchbay/vendor-gateway/api/routes"
	"github.com/munchbay/vendor-gateway/internal/monitor"
	"github.com/munchbay/vendor-gateway/internal/orders"
	"github.com/munchbay/vendor-gateway/pkg/config"
	"github.com/munchbay/vendor-gateway/pkg/foodorder"
	"github.com/munchbay/vendor-gateway/pkg/logger"
	"github.com/munchbay/vendor-gateway/pkg/metrics"
	"github.com/munchbay/vendor-gateway/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "vendor-gateway"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "vendor-gateway",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	platform, err := foodorder.NewClient(cfg.Upstream.BaseURL,
		foodorder.WithToken(cfg.Upstream.Token),
		foodorder.WithTimeout(cfg.Upstream.RequestTimeout),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create food-order client", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.ServiceParams{
		Platform:     platform,
		Logger:       logg,
		RestaurantID: cfg.Restaurant.ID,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	orderMonitor, err := monitor.New(monitor.Params{
		Platform:     platform,
		Logger:       logg,
		RestaurantID: cfg.Restaurant.ID,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create order monitor", err)
		os.Exit(1)
	}

	pollMetrics := metrics.NewPollCycleMetrics(prometheus.DefaultRegisterer)
	poller, err := monitor.NewPoller(monitor.PollerParams{
		Monitor:      orderMonitor,
		Logger:       logg,
		Metrics:      pollMetrics,
		Interval:     cfg.Monitor.PollInterval,
		CycleTimeout: cfg.Monitor.CycleTimeout,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create poller", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go poller.Run(ctx)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting vendor gateway")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:       cfg,
			Logger:       logg,
			Redis:        redisClient,
			Orders:       ordersService,
			Alerts:       orderMonitor,
			PromGatherer: prometheus.DefaultGatherer,
		}),
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "gateway stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "gateway shutdown error", err)
		}
	}

	logg.Info(ctx, "gateway shutting down gracefully")
}
