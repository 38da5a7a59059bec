package migration

import (
	"context"
	"testing"

	"github.com/hectohq/hecto_backend/models"
)

func seedHealthyStore() *fakeStore {
	store := newFakeStore()
	store.seedUser("u1", "a@example.com")
	store.seedUser("u2", "b@example.com")
	store.seedCompany("b1", "u1", false)
	store.seedCompany("n1", "u2", true)

	long := "long"
	short := "short"
	n := store.findCompany("n1")
	n.LongSummary = &long
	n.ShortSummary = &short

	headline := "Launch"
	store.campaigns = append(store.campaigns, &models.Campaign{ID: "c1", CompanyId: "b1", Headline: &headline})
	store.stats = append(store.stats, &models.NewsletterStat{CompanyId: "n1"})
	store.packages = append(store.packages, &models.Package{ID: "p1"})
	return store
}

func checkByName(t *testing.T, summary *ValidationSummary, name string) Check {
	t.Helper()
	for _, c := range summary.Checks {
		if c.Check == name {
			return c
		}
	}
	t.Fatalf("check %q not found in %v", name, summary.Checks)
	return Check{}
}

func TestValidateHealthyStore(t *testing.T) {
	store := seedHealthyStore()
	p := newTestPipeline(store)

	summary, err := Validate(context.Background(), p, store)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Failed != 0 {
		t.Fatalf("healthy store failed validation: %+v", summary.Checks)
	}
	if summary.HasFailures() {
		t.Error("HasFailures() = true with zero failed checks")
	}
	if c := checkByName(t, summary, "Orphaned Campaigns"); c.Status != CheckPass {
		t.Errorf("orphaned campaigns = %+v", c)
	}
	if c := checkByName(t, summary, "Orphaned Companies"); c.Status != CheckPass {
		t.Errorf("orphaned companies = %+v", c)
	}
}

func TestValidateDetectsOrphanedCampaigns(t *testing.T) {
	store := seedHealthyStore()
	store.campaigns = append(store.campaigns, &models.Campaign{ID: "c-orphan", CompanyId: "missing-company"})
	p := newTestPipeline(store)

	summary, err := Validate(context.Background(), p, store)
	if err != nil {
		t.Fatal(err)
	}
	c := checkByName(t, summary, "Orphaned Campaigns")
	if c.Status != CheckFail {
		t.Fatalf("orphan not detected: %+v", c)
	}
	ids, _ := c.Details["ids"].([]string)
	if len(ids) != 1 || ids[0] != "c-orphan" {
		t.Errorf("orphan ids = %v", ids)
	}
	if !summary.HasFailures() {
		t.Error("HasFailures() = false with a failed check")
	}
}

func TestValidateDetectsOrphanedCompanies(t *testing.T) {
	store := seedHealthyStore()
	store.seedCompany("b-orphan", "missing-user", false)
	p := newTestPipeline(store)

	summary, err := Validate(context.Background(), p, store)
	if err != nil {
		t.Fatal(err)
	}
	c := checkByName(t, summary, "Orphaned Companies")
	if c.Status != CheckFail {
		t.Fatalf("orphan not detected: %+v", c)
	}
}

func TestValidateNoMigratedUsersFails(t *testing.T) {
	store := newFakeStore()
	p := newTestPipeline(store)

	summary, err := Validate(context.Background(), p, store)
	if err != nil {
		t.Fatal(err)
	}
	if c := checkByName(t, summary, "User Count"); c.Status != CheckFail {
		t.Errorf("empty store user count = %+v, want FAIL", c)
	}
}

func TestValidateMissingEmailFails(t *testing.T) {
	store := seedHealthyStore()
	store.users = append(store.users, &models.User{ID: "u-blank", Email: ""})
	p := newTestPipeline(store)

	summary, err := Validate(context.Background(), p, store)
	if err != nil {
		t.Fatal(err)
	}
	if c := checkByName(t, summary, "User Emails"); c.Status != CheckFail {
		t.Errorf("blank email = %+v, want FAIL", c)
	}
}

func TestValidateMissingNameWarns(t *testing.T) {
	store := seedHealthyStore()
	store.companies = append(store.companies, &models.Company{ID: "b-noname", UserId: "u1"})
	p := newTestPipeline(store)

	summary, err := Validate(context.Background(), p, store)
	if err != nil {
		t.Fatal(err)
	}
	if c := checkByName(t, summary, "Company Names"); c.Status != CheckWarning {
		t.Errorf("missing name = %+v, want WARNING", c)
	}
	if summary.HasFailures() {
		t.Error("warnings alone must not flip the exit status")
	}
}

func TestValidateSummaryCounts(t *testing.T) {
	store := seedHealthyStore()
	p := newTestPipeline(store)

	summary, err := Validate(context.Background(), p, store)
	if err != nil {
		t.Fatal(err)
	}
	if got := summary.Passed + summary.Failed + summary.Warnings; got != len(summary.Checks) {
		t.Errorf("counts %d+%d+%d do not cover %d checks",
			summary.Passed, summary.Failed, summary.Warnings, len(summary.Checks))
	}
}
