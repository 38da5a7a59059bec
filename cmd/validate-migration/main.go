package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hectohq/hecto_backend/config"
	"github.com/hectohq/hecto_backend/migration"
)

// Stage 7 of the Bubble migration: read-only validation of the migrated
// store. Exits non-zero when any check fails; warnings alone do not.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}

	store := migration.NewGormStore(db)
	p := migration.NewPipeline(store, config.GetLogger())

	summary, err := migration.Validate(ctx, p, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation aborted: %v\n", err)
		os.Exit(1)
	}
	if summary.HasFailures() {
		os.Exit(1)
	}
}
