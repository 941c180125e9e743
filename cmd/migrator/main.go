package main

import (
	"context"
	"flag"
	"log"

	"github.com/UnknownOlympus/staffbook/internal/config"
	"github.com/UnknownOlympus/staffbook/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

func main() {
	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "migrations", "directory with SQL migrations")
	flag.Parse()

	command := "up"
	args := flag.Args()
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(context.Background(), cfg.Postgres)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	dtb := stdlib.OpenDBFromPool(dbpool)
	defer dtb.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}

	if migrationErr := goose.Run(command, dtb, migrationsDir, args...); migrationErr != nil {
		log.Fatal(migrationErr)
	}

	log.Printf("✅ Migration command %q applied successfully", command)
}
