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

// Stage 3 of the Bubble migration: import brands and newsletters into the
// companies table, excluding every owner named in the dual-owner report.
// Run identify-dual-owners first; without its report nothing is excluded.
func main() {
	brandsFile := flag.String("brands", "migration_data/export_brands.csv", "Path to the brand export (.csv or .xlsx)")
	newslettersFile := flag.String("newsletters", "migration_data/export_newsletters.csv", "Path to the newsletter export (.csv or .xlsx)")
	reportFile := flag.String("report", migration.DefaultDualOwnerReportFile, "Path to the dual-owner report")
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

	brandRows, err := migration.ReadRows(*brandsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", *brandsFile, err)
		os.Exit(1)
	}
	newsletterRows, err := migration.ReadRows(*newslettersFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", *newslettersFile, err)
		os.Exit(1)
	}

	dualOwnerEmails, err := migration.LoadDualOwnerEmails(*reportFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load dual-owner report: %v\n", err)
		os.Exit(1)
	}
	if len(dualOwnerEmails) == 0 {
		fmt.Fprintf(os.Stderr, "warning: no dual-owner report at %s, proceeding without exclusions\n", *reportFile)
	}

	p := migration.NewPipeline(migration.NewGormStore(db), config.GetLogger())
	_, _, total, err := migration.ImportCompanies(ctx, p, brandRows, newsletterRows, dualOwnerEmails)
	if err != nil {
		fmt.Fprintf(os.Stderr, "company migration aborted: %v\n", err)
		os.Exit(1)
	}
	if total.Failed > 0 {
		os.Exit(1)
	}
}
