package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hectohq/hecto_backend/config"
	"github.com/hectohq/hecto_backend/migration"
	"github.com/hectohq/hecto_backend/models"
)

// Stage 6 of the Bubble migration: import sponsorship packages. Safe to
// re-run; existing packages are skipped.
func main() {
	file := flag.String("file", "migration_data/export_packages.csv", "Path to the package export (.csv or .xlsx)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}
	models.MigrateTable()

	rows, err := migration.ReadRows(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", *file, err)
		os.Exit(1)
	}

	p := migration.NewPipeline(migration.NewGormStore(db), config.GetLogger())
	result, err := migration.ImportPackages(ctx, p, rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "package migration aborted: %v\n", err)
		os.Exit(1)
	}
	if result.Failed > 0 {
		os.Exit(1)
	}
}
