package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"worldpop/internal/platform/config"
	"worldpop/internal/platform/httpserver"
	"worldpop/internal/platform/logger"
	platformmetrics "worldpop/internal/platform/metrics"
	"worldpop/internal/platform/tracing"
	"worldpop/internal/population"
	popmetrics "worldpop/internal/population/metrics"
	"worldpop/internal/population/service"
	httptransport "worldpop/internal/transport/http"
)

// main serves the population report API until SIGINT or SIGTERM.
func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	log := logger.New(cfg.Log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, log)
	if err != nil {
		return err
	}
	defer tracing.Shutdown(context.Background(), shutdownTracing, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	popMetrics := popmetrics.New(reg)

	source, err := population.OpenSource(ctx, cfg, log, popMetrics)
	if err != nil {
		return err
	}
	defer func() {
		if err := source.Close(); err != nil {
			log.Warn("closing record source", "error", err)
		}
	}()

	svc, err := population.NewService(source,
		service.WithLogger(log),
		service.WithMetrics(popMetrics),
	)
	if err != nil {
		return err
	}

	checks := make(map[string]httptransport.HealthCheck, len(source.Checks))
	for name, check := range source.Checks {
		checks[name] = check
	}
	router := httptransport.NewRouter(httptransport.Deps{
		Logger:        log,
		Metrics:       platformmetrics.New(reg),
		Gatherer:      reg,
		ReportTimeout: cfg.Server.ReportTimeout,
		HealthChecks:  checks,
		Population:    population.NewHandler(svc, log),
	})

	srv := httpserver.New(cfg.Server.Addr, router, cfg.Server.ReportTimeout, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting worldpop", "addr", cfg.Server.Addr, "driver", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
