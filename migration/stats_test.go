package migration

import (
	"context"
	"testing"
	"time"
)

func statRow(newsletterID, date, proof string) Row {
	return Row{
		colStatNewsletter: newsletterID,
		colStatDate:       date,
		colSubscribers:    "1500",
		colOpenRate:       "42.5",
		colCTR:            "3.1",
		colProof:          proof,
		colCreationDate:   "Feb 1, 2021 8:00 am",
	}
}

func TestImportNewsletterStatsRequiresNewsletter(t *testing.T) {
	store := newFakeStore()
	store.seedCompany("n1", "u1", true)
	store.seedCompany("b1", "u1", false)
	p := newTestPipeline(store)

	rows := []Row{
		statRow("n1", "Feb 1, 2021", ""),
		statRow("b1", "Feb 1, 2021", ""), // brand, not a newsletter
		statRow("ghost", "Feb 1, 2021", ""),
		statRow("", "Feb 1, 2021", ""),
	}
	result, err := ImportNewsletterStats(context.Background(), p, rows)
	if err != nil {
		t.Fatal(err)
	}
	if result.Succeeded != 1 || result.Skipped != 3 {
		t.Fatalf("result = %+v", result)
	}

	stat := store.stats[0]
	if stat.CompanyId != "n1" {
		t.Errorf("company id = %q", stat.CompanyId)
	}
	if stat.Subscribers == nil || *stat.Subscribers != 1500 {
		t.Errorf("subscribers = %v", stat.Subscribers)
	}
	if stat.OpenRate == nil || *stat.OpenRate != 42.5 {
		t.Errorf("open rate = %v", stat.OpenRate)
	}
}

func TestStatEffectiveDatePriority(t *testing.T) {
	result := &Result{}

	row := Row{colStatDate: "Feb 1, 2021", colStatUpdated: "Feb 5, 2021", colCreationDate: "Feb 9, 2021"}
	if got := statEffectiveDate(row, result); got.Day() != 1 {
		t.Errorf("date column not preferred: %v", got)
	}

	row = Row{colStatDate: "", colStatUpdated: "Feb 5, 2021", colCreationDate: "Feb 9, 2021"}
	if got := statEffectiveDate(row, result); got.Day() != 5 {
		t.Errorf("updated column not used as fallback: %v", got)
	}

	row = Row{colStatDate: "", colStatUpdated: "", colCreationDate: "Feb 9, 2021"}
	if got := statEffectiveDate(row, result); got.Day() != 9 {
		t.Errorf("creation date not used as last fallback: %v", got)
	}
	if result.Assumed != 0 {
		t.Errorf("assumed = %d for parseable dates", result.Assumed)
	}

	row = Row{}
	statEffectiveDate(row, result)
	if result.Assumed != 1 {
		t.Errorf("assumed = %d after all-blank row, want 1", result.Assumed)
	}
}

func TestImportNewsletterStatsBackfillsLatestProof(t *testing.T) {
	store := newFakeStore()
	store.seedCompany("n1", "u1", true)
	p := newTestPipeline(store)

	rows := []Row{
		statRow("n1", "Feb 3, 2021", "https://proof/middle"),
		statRow("n1", "Feb 9, 2021", "https://proof/latest"),
		statRow("n1", "Feb 1, 2021", "https://proof/oldest"),
	}
	if _, err := ImportNewsletterStats(context.Background(), p, rows); err != nil {
		t.Fatal(err)
	}

	c := store.findCompany("n1")
	if c.NewsletterProofUrl == nil || *c.NewsletterProofUrl != "https://proof/latest" {
		t.Errorf("proof url = %v, want the chronologically latest", c.NewsletterProofUrl)
	}
	if len(store.proofCalls) != 1 {
		t.Errorf("proof updates = %v, want one per company", store.proofCalls)
	}
}

func TestImportNewsletterStatsProofTieBreak(t *testing.T) {
	store := newFakeStore()
	store.seedCompany("n1", "u1", true)
	p := newTestPipeline(store)

	// Equal dates: the row encountered later in the file wins.
	rows := []Row{
		statRow("n1", "Feb 9, 2021", "https://proof/x"),
		statRow("n1", "Feb 9, 2021", "https://proof/y"),
	}
	if _, err := ImportNewsletterStats(context.Background(), p, rows); err != nil {
		t.Fatal(err)
	}

	c := store.findCompany("n1")
	if c.NewsletterProofUrl == nil || *c.NewsletterProofUrl != "https://proof/y" {
		t.Errorf("proof url = %v, want the later-encountered candidate", c.NewsletterProofUrl)
	}
}

func TestImportNewsletterStatsSkipsBlankProof(t *testing.T) {
	store := newFakeStore()
	store.seedCompany("n1", "u1", true)
	p := newTestPipeline(store)

	rows := []Row{statRow("n1", "Feb 1, 2021", "  ")}
	if _, err := ImportNewsletterStats(context.Background(), p, rows); err != nil {
		t.Fatal(err)
	}
	if len(store.proofCalls) != 0 {
		t.Errorf("blank proof triggered an update: %v", store.proofCalls)
	}
}

// Stats carry no legacy id, so the importer has nothing to deduplicate on.
// This pins the known non-idempotence: re-running doubles the rows.
func TestImportNewsletterStatsRerunDuplicates(t *testing.T) {
	store := newFakeStore()
	store.seedCompany("n1", "u1", true)
	p := newTestPipeline(store)

	rows := []Row{statRow("n1", "Feb 1, 2021", "")}
	if _, err := ImportNewsletterStats(context.Background(), p, rows); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportNewsletterStats(context.Background(), p, rows); err != nil {
		t.Fatal(err)
	}
	if len(store.stats) != 2 {
		t.Errorf("stats = %d, want 2 after double run", len(store.stats))
	}
}

func TestImportNewsletterStatsParsesDates(t *testing.T) {
	store := newFakeStore()
	store.seedCompany("n1", "u1", true)
	p := newTestPipeline(store)

	rows := []Row{statRow("n1", "Feb 1, 2021", "")}
	if _, err := ImportNewsletterStats(context.Background(), p, rows); err != nil {
		t.Fatal(err)
	}
	want := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !store.stats[0].Date.Equal(want) {
		t.Errorf("date = %v, want %v", store.stats[0].Date, want)
	}
}
