package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/UnknownOlympus/staffbook/internal/config"
	"github.com/UnknownOlympus/staffbook/internal/metrics"
	"github.com/UnknownOlympus/staffbook/internal/repository"
	"github.com/UnknownOlympus/staffbook/internal/server"
	"github.com/UnknownOlympus/staffbook/internal/services/employees"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	var wgr sync.WaitGroup

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
	staff := employees.NewStaff(logger, employeeRepo, appMetrics)

	router := server.NewRouter(server.Deps{
		Log:      logger,
		Staff:    staff,
		DB:       dtb,
		Metrics:  appMetrics,
		Gatherer: reg,
	})

	wgr.Add(1)

	go func() {
		defer wgr.Done()
		if err := server.StartServer(ctx, logger, router, cfg.HTTP); err != nil {
			logger.ErrorContext(ctx, "Employee API failed", "error", err)
			stop()
		}
		logger.InfoContext(ctx, "Employee API stopped.")
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	wgr.Wait()

	logger.InfoContext(ctx, "Application stopped gracefully...")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{Key: "", Value: slog.Value{}}
	}
	return a
}
