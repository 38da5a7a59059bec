package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hectohq/hecto_backend/migration"
)

// Stage 1 of the Bubble migration: intersect the brand and newsletter exports
// and write the dual-owner report the company importer excludes against.
// Runs entirely offline; no database connection needed.
func main() {
	brandsFile := flag.String("brands", "migration_data/export_brands.csv", "Path to the brand export (.csv or .xlsx)")
	newslettersFile := flag.String("newsletters", "migration_data/export_newsletters.csv", "Path to the newsletter export (.csv or .xlsx)")
	reportFile := flag.String("report", migration.DefaultDualOwnerReportFile, "Where to write the dual-owner report")
	workbookFile := flag.String("workbook", "", "Optional: also write an xlsx handoff workbook for the operations team")
	flag.Parse()

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

	fmt.Printf("Analyzing %d brands and %d newsletters...\n", len(brandRows), len(newsletterRows))
	owners := migration.IdentifyDualOwners(brandRows, newsletterRows)

	if err := migration.WriteDualOwnerReport(*reportFile, owners); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d dual owners, report written to %s\n", len(owners), *reportFile)
	for _, owner := range owners {
		fmt.Printf("  %s: %d brands, %d newsletters\n", owner.Email, len(owner.BrandIds), len(owner.NewsletterIds))
	}

	if *workbookFile != "" {
		if err := migration.WriteDualOwnerWorkbook(*workbookFile, owners); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write workbook: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Handoff workbook written to %s\n", *workbookFile)
	}
}
