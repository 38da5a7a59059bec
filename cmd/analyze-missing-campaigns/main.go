package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hectohq/hecto_backend/config"
	"github.com/hectohq/hecto_backend/migration"
)

// Explains why campaign rows from the export did not make it into the
// database: classifies each row as migrated, missing its brand reference, or
// pointing at a company that was never migrated (usually a dual owner's).
func main() {
	file := flag.String("file", "migration_data/export_campaigns.csv", "Path to the campaign export (.csv or .xlsx)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}

	rows, err := migration.ReadRows(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", *file, err)
		os.Exit(1)
	}

	store := migration.NewGormStore(db)

	var migrated, noBrand, companyMissing, noID int
	var missing []string
	for _, row := range rows {
		id := strings.TrimSpace(row.Get("unique id"))
		if id == "" {
			noID++
			continue
		}
		brandID := strings.TrimSpace(row.Get("brandRequesting"))
		if brandID == "" {
			noBrand++
			missing = append(missing, fmt.Sprintf("%s: no brandRequesting (%s)", id, row.Get("Campaign Headline")))
			continue
		}
		exists, err := store.CampaignExists(ctx, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "query failed: %v\n", err)
			os.Exit(1)
		}
		if exists {
			migrated++
			continue
		}
		companyExists, err := store.CompanyExists(ctx, brandID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "query failed: %v\n", err)
			os.Exit(1)
		}
		if !companyExists {
			companyMissing++
			missing = append(missing, fmt.Sprintf("%s: company %s not migrated (%s)", id, brandID, row.Get("Campaign Headline")))
		} else {
			missing = append(missing, fmt.Sprintf("%s: company exists but campaign absent (%s)", id, row.Get("Campaign Headline")))
		}
	}

	fmt.Printf("Analyzed %d campaign rows\n", len(rows))
	fmt.Printf("  Migrated:              %d\n", migrated)
	fmt.Printf("  Missing unique id:     %d\n", noID)
	fmt.Printf("  Missing brand field:   %d\n", noBrand)
	fmt.Printf("  Company not migrated:  %d\n", companyMissing)

	if len(missing) > 0 {
		fmt.Printf("\nFirst missing campaigns (%d total):\n", len(missing))
		for i, m := range missing {
			if i == 10 {
				fmt.Printf("  ... and %d more\n", len(missing)-10)
				break
			}
			fmt.Printf("  %s\n", m)
		}
	}
}
