package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Houeta/field-weather-service/internal/config"
	"github.com/Houeta/field-weather-service/internal/metrics"
	"github.com/Houeta/field-weather-service/internal/observability"
	"github.com/Houeta/field-weather-service/internal/repository"
	"github.com/Houeta/field-weather-service/internal/service"
	"github.com/Houeta/field-weather-service/internal/stations"
	"github.com/Houeta/field-weather-service/internal/transport/rest/handler"
	"github.com/Houeta/field-weather-service/internal/weather"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

func main() {
	// Cancelled on SIGINT/SIGTERM to start the graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)
	slog.SetDefault(logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Application stopped with error", "error", err)
		stop()
		os.Exit(1)
	}

	logger.Info("Application stopped gracefully.")
}

// run wires the application and blocks until ctx is cancelled or the server fails.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, logger)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	directory, err := stations.Load(cfg.StationsFile)
	if err != nil {
		return fmt.Errorf("failed to load stations: %w", err)
	}
	logger.InfoContext(ctx, "Station directory loaded", "stations", directory.Len())

	connString := cfg.Database.ConnString()
	if err = repository.RunMigrations(connString, logger); err != nil {
		return err
	}

	dtb, err := repository.NewDatabase(ctx, connString)
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}
	defer dtb.Close()

	repo := repository.NewRepository(dtb, logger)
	client := weather.NewClient(cfg.Weather.Timeout, cfg.Weather.RateLimit, logger)

	fieldService := service.NewFieldService(logger, repo, appMetrics, cfg.DuplicateTolerance)
	weatherService := service.NewWeatherService(logger, repo, directory, client, appMetrics, nil)

	router := handler.NewRouter(handler.NewServer(fieldService, weatherService, logger), handler.RouterConfig{
		Log:        logger,
		Metrics:    appMetrics,
		Gatherer:   reg,
		CORSOrigin: cfg.HTTP.CORSOrigin,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "Starting HTTP server", "port", cfg.HTTP.Port)
		if errServe := server.ListenAndServe(); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			serverErr <- errServe
		}
		close(serverErr)
	}()

	select {
	case err = <-serverErr:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutdown signal received. Stopping application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	return nil
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	return newLogger(os.Stdout, env)
}

func newLogger(w io.Writer, env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: true}))
	case envDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case envProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn, ReplaceAttr: dropTime}))
	}

	log := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelError, ReplaceAttr: dropTime}))
	log.Error(
		"FIELDS_ENV was not specified or is invalid. Logging will be minimal.",
		slog.String("available_envs", "local, development, production"))

	return log
}

// dropTime removes the timestamp; the log collector adds its own.
func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
