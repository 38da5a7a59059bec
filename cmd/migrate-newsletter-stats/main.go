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

// Stage 5 of the Bubble migration: import newsletter stats and back-fill each
// newsletter's proof url from its latest stat row. Stats carry no legacy id,
// so unlike the other stages this one is NOT safe to re-run: a second run
// inserts every row again.
func main() {
	file := flag.String("file", "migration_data/export_newsletter_stats.csv", "Path to the newsletter stats export (.csv or .xlsx)")
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
	result, err := migration.ImportNewsletterStats(ctx, p, rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "newsletter stats migration aborted: %v\n", err)
		os.Exit(1)
	}
	if result.Failed > 0 {
		os.Exit(1)
	}
}
