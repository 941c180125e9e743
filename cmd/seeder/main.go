package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/UnknownOlympus/staffbook/internal/config"
	"github.com/UnknownOlympus/staffbook/internal/metrics"
	"github.com/UnknownOlympus/staffbook/internal/repository"
	"github.com/UnknownOlympus/staffbook/internal/services/employees"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tamathecxder/randomail"
)

func main() {
	ctx := context.Background()
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	dbpool, dbErr := repository.NewDatabase(ctx, cfg.Postgres)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	staff := employees.NewStaff(logger, repository.NewEmployeeRepository(dbpool, appMetrics), appMetrics)

	created, err := staff.Seed(ctx, cfg.Seed.Count, randomail.GenerateRandomEmail)
	if err != nil {
		logger.ErrorContext(ctx, "Seeding failed", "created", created, "error", err)
		dbpool.Close()
		os.Exit(1)
	}

	log.Printf("✅ Seeded %d demo employees", created)
}
