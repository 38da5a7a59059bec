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

// Prints a quick count of what has been migrated so far. Useful between
// stages to sanity-check progress without running the full validator.
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

	users, err := store.CountUsers(ctx)
	fatal(err)
	migrated, err := store.CountMigratedUsers(ctx)
	fatal(err)
	companies, err := store.CountCompanies(ctx)
	fatal(err)
	newsletters, err := store.CountNewsletters(ctx)
	fatal(err)
	campaigns, err := store.CountCampaigns(ctx)
	fatal(err)
	stats, err := store.CountNewsletterStats(ctx)
	fatal(err)
	packages, err := store.CountPackages(ctx)
	fatal(err)

	fmt.Println("Migration Status")
	fmt.Println("----------------")
	fmt.Printf("Users:             %d (%d migrated from Bubble)\n", users, migrated)
	fmt.Printf("Companies:         %d (%d newsletters, %d brands)\n", companies, newsletters, companies-newsletters)
	fmt.Printf("Campaigns:         %d\n", campaigns)
	fmt.Printf("Newsletter Stats:  %d\n", stats)
	fmt.Printf("Packages:          %d\n", packages)
}

func fatal(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "query failed: %v\n", err)
		os.Exit(1)
	}
}
