package migration

import (
	"context"
	"fmt"
	"strings"
)

type CheckStatus string

const (
	CheckPass    CheckStatus = "PASS"
	CheckFail    CheckStatus = "FAIL"
	CheckWarning CheckStatus = "WARNING"
)

type Check struct {
	Check   string
	Status  CheckStatus
	Message string
	Details map[string]any
}

type ValidationSummary struct {
	Checks   []Check
	Passed   int
	Failed   int
	Warnings int
}

// HasFailures decides the process exit code: non-zero iff any check FAILed.
func (s *ValidationSummary) HasFailures() bool {
	return s.Failed > 0
}

// Validate is a read-only consistency pass over the migrated store: counts,
// id preservation, completeness, summary coverage, and an orphan scan. The
// orphan scan loads all valid user/company ids into sets first, so it costs
// two bulk reads plus O(1) membership per row instead of a lookup per row.
func Validate(ctx context.Context, p *Pipeline, store ValidationStore) (*ValidationSummary, error) {
	p.printf("Starting Migration Validation...\n\n")
	p.printf("This will check data integrity, foreign key relationships, and completeness.\n")

	v := &validator{p: p, store: store, summary: &ValidationSummary{}}

	p.printf("\n[1/6] Validating User Count...\n\n")
	v.checkUserCount(ctx)
	p.printf("\n[2/6] Validating ID Preservation...\n\n")
	v.checkIDPreservation(ctx)
	p.printf("\n[3/6] Validating Foreign Key Integrity...\n\n")
	v.checkForeignKeyCounts(ctx)
	p.printf("\n[4/6] Validating Data Completeness...\n\n")
	v.checkCompleteness(ctx)
	p.printf("\n[5/6] Validating Newsletter Summary Population...\n\n")
	v.checkNewsletterSummaries(ctx)
	p.printf("\n[6/6] Validating No Orphaned Records...\n\n")
	v.checkOrphans(ctx)

	v.printSummary()
	return v.summary, ctx.Err()
}

type validator struct {
	p       *Pipeline
	store   ValidationStore
	summary *ValidationSummary
}

func (v *validator) logCheck(c Check) {
	switch c.Status {
	case CheckPass:
		v.summary.Passed++
	case CheckFail:
		v.summary.Failed++
	case CheckWarning:
		v.summary.Warnings++
	}
	v.summary.Checks = append(v.summary.Checks, c)
	v.p.printf("[%s] %s: %s\n", c.Status, c.Check, c.Message)
	if len(c.Details) > 0 {
		v.p.printf("  Details: %v\n", c.Details)
	}
}

func (v *validator) failCheck(name string, err error) {
	v.logCheck(Check{
		Check:   name,
		Status:  CheckFail,
		Message: fmt.Sprintf("Error running check: %v", err),
	})
}

func (v *validator) checkUserCount(ctx context.Context) {
	total, err := v.store.CountUsers(ctx)
	if err != nil {
		v.failCheck("User Count", err)
		return
	}
	migrated, err := v.store.CountMigratedUsers(ctx)
	if err != nil {
		v.failCheck("User Count", err)
		return
	}
	status := CheckFail
	if migrated > 0 {
		status = CheckPass
	}
	v.logCheck(Check{
		Check:   "User Count",
		Status:  status,
		Message: fmt.Sprintf("Found %d users (%d migrated from Bubble)", total, migrated),
		Details: map[string]any{"total": total, "migrated": migrated},
	})
}

func (v *validator) checkIDPreservation(ctx context.Context) {
	withBubbleID, err := v.store.CountMigratedUsersWithBubbleID(ctx)
	if err != nil {
		v.failCheck("ID Preservation", err)
		return
	}
	migrated, err := v.store.CountMigratedUsers(ctx)
	if err != nil {
		v.failCheck("ID Preservation", err)
		return
	}
	status := CheckWarning
	if withBubbleID == migrated {
		status = CheckPass
	}
	v.logCheck(Check{
		Check:   "Bubble User IDs",
		Status:  status,
		Message: fmt.Sprintf("%d/%d migrated users have Bubble ID preserved", withBubbleID, migrated),
		Details: map[string]any{"withBubbleId": withBubbleID, "total": migrated},
	})
}

// The schema makes these foreign-key columns required, so the checks are
// count-only; actual referential reachability is the orphan scan's job.
func (v *validator) checkForeignKeyCounts(ctx context.Context) {
	companies, err := v.store.CountCompanies(ctx)
	if err != nil {
		v.failCheck("Foreign Key Integrity", err)
		return
	}
	v.logCheck(Check{
		Check:   "Companies -> Users",
		Status:  CheckPass,
		Message: fmt.Sprintf("All %d companies have userId (required field)", companies),
		Details: map[string]any{"total": companies},
	})

	campaigns, err := v.store.CountCampaigns(ctx)
	if err != nil {
		v.failCheck("Foreign Key Integrity", err)
		return
	}
	v.logCheck(Check{
		Check:   "Campaigns -> Companies",
		Status:  CheckPass,
		Message: fmt.Sprintf("All %d campaigns have companyId (required field)", campaigns),
		Details: map[string]any{"total": campaigns},
	})

	stats, err := v.store.CountNewsletterStats(ctx)
	if err != nil {
		v.failCheck("Foreign Key Integrity", err)
		return
	}
	v.logCheck(Check{
		Check:   "Newsletter Stats -> Companies",
		Status:  CheckPass,
		Message: fmt.Sprintf("All %d newsletter stats have companyId (required field)", stats),
		Details: map[string]any{"total": stats},
	})

	packages, err := v.store.CountPackages(ctx)
	if err != nil {
		v.failCheck("Foreign Key Integrity", err)
		return
	}
	v.logCheck(Check{
		Check:   "Packages",
		Status:  CheckPass,
		Message: fmt.Sprintf("%d packages migrated", packages),
		Details: map[string]any{"total": packages},
	})
}

func (v *validator) checkCompleteness(ctx context.Context) {
	missingName, err := v.store.CountCompaniesMissingName(ctx)
	if err != nil {
		v.failCheck("Data Completeness", err)
		return
	}
	totalCompanies, err := v.store.CountCompanies(ctx)
	if err != nil {
		v.failCheck("Data Completeness", err)
		return
	}
	v.logCheck(coverageCheck("Company Names", "companies", "name", missingName, totalCompanies, CheckWarning))

	missingHeadline, err := v.store.CountCampaignsMissingHeadline(ctx)
	if err != nil {
		v.failCheck("Data Completeness", err)
		return
	}
	totalCampaigns, err := v.store.CountCampaigns(ctx)
	if err != nil {
		v.failCheck("Data Completeness", err)
		return
	}
	v.logCheck(coverageCheck("Campaign Headlines", "campaigns", "headline", missingHeadline, totalCampaigns, CheckWarning))

	missingEmail, err := v.store.CountUsersMissingEmail(ctx)
	if err != nil {
		v.failCheck("Data Completeness", err)
		return
	}
	totalUsers, err := v.store.CountUsers(ctx)
	if err != nil {
		v.failCheck("Data Completeness", err)
		return
	}
	// A user without an email is unreachable and unrecoverable, so this one
	// fails instead of warning.
	v.logCheck(coverageCheck("User Emails", "users", "email", missingEmail, totalUsers, CheckFail))
}

func coverageCheck(name, noun, field string, missing, total int64, badStatus CheckStatus) Check {
	if missing == 0 {
		return Check{
			Check:   name,
			Status:  CheckPass,
			Message: fmt.Sprintf("All %s have %s", noun, field),
			Details: map[string]any{"missing": missing, "total": total},
		}
	}
	return Check{
		Check:   name,
		Status:  badStatus,
		Message: fmt.Sprintf("%d/%d %s missing %s", missing, total, noun, field),
		Details: map[string]any{"missing": missing, "total": total},
	}
}

func (v *validator) checkNewsletterSummaries(ctx context.Context) {
	newsletters, err := v.store.CountNewsletters(ctx)
	if err != nil {
		v.failCheck("Newsletter Summaries", err)
		return
	}
	withLong, err := v.store.CountNewslettersWithLongSummary(ctx)
	if err != nil {
		v.failCheck("Newsletter Summaries", err)
		return
	}
	withShort, err := v.store.CountNewslettersWithShortSummary(ctx)
	if err != nil {
		v.failCheck("Newsletter Summaries", err)
		return
	}

	longStatus := CheckWarning
	if withLong > 0 {
		longStatus = CheckPass
	}
	v.logCheck(Check{
		Check:   "Newsletter Long Summary",
		Status:  longStatus,
		Message: fmt.Sprintf("%d/%d newsletters have longSummary populated", withLong, newsletters),
		Details: map[string]any{"withLongSummary": withLong, "total": newsletters},
	})

	shortStatus := CheckWarning
	if withShort > 0 {
		shortStatus = CheckPass
	}
	v.logCheck(Check{
		Check:   "Newsletter Short Summary",
		Status:  shortStatus,
		Message: fmt.Sprintf("%d/%d newsletters have shortSummary populated", withShort, newsletters),
		Details: map[string]any{"withShortSummary": withShort, "total": newsletters},
	})
}

func (v *validator) checkOrphans(ctx context.Context) {
	companyIDs, err := v.store.CompanyIDs(ctx)
	if err != nil {
		v.failCheck("Orphaned Records", err)
		return
	}
	companySet := toSet(companyIDs)

	campaigns, err := v.store.CampaignRefs(ctx)
	if err != nil {
		v.failCheck("Orphaned Records", err)
		return
	}
	var orphanedCampaigns []string
	for _, campaign := range campaigns {
		if _, ok := companySet[campaign.CompanyId]; !ok {
			orphanedCampaigns = append(orphanedCampaigns, campaign.ID)
		}
	}
	v.logCheck(orphanCheck("Orphaned Campaigns", "campaigns reference non-existent companies", orphanedCampaigns))

	userIDs, err := v.store.UserIDs(ctx)
	if err != nil {
		v.failCheck("Orphaned Records", err)
		return
	}
	userSet := toSet(userIDs)

	companies, err := v.store.CompanyRefs(ctx)
	if err != nil {
		v.failCheck("Orphaned Records", err)
		return
	}
	var orphanedCompanies []string
	for _, company := range companies {
		if _, ok := userSet[company.UserId]; !ok {
			orphanedCompanies = append(orphanedCompanies, company.ID)
		}
	}
	v.logCheck(orphanCheck("Orphaned Companies", "companies reference non-existent users", orphanedCompanies))
}

func orphanCheck(name, problem string, orphans []string) Check {
	if len(orphans) == 0 {
		return Check{
			Check:   name,
			Status:  CheckPass,
			Message: fmt.Sprintf("No %s found", strings.ToLower(name)),
		}
	}
	return Check{
		Check:   name,
		Status:  CheckFail,
		Message: fmt.Sprintf("%d %s", len(orphans), problem),
		Details: map[string]any{"ids": orphans},
	}
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (v *validator) printSummary() {
	line := strings.Repeat("=", 60)
	v.p.printf("\n%s\n", line)
	v.p.printf("Migration Validation Summary\n")
	v.p.printf("%s\n", line)
	v.p.printf("Total Checks:  %d\n", len(v.summary.Checks))
	v.p.printf("Passed:        %d\n", v.summary.Passed)
	v.p.printf("Failed:        %d\n", v.summary.Failed)
	v.p.printf("Warnings:      %d\n", v.summary.Warnings)
	v.p.printf("%s\n\n", line)
}
