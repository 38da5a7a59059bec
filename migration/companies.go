package migration

import (
	"context"
	"fmt"
	"strings"

	"github.com/hectohq/hecto_backend/models"
)

const (
	colBrandName       = "Brand Name"
	colBrandWebsite    = "Brand Website"
	colBrandLongSum    = "Long Summary"
	colBrandShortSum   = "Short Summary"
	colBrandLogo       = "Logo"
	colBrandTags       = "tags"
	colBrandVerified   = "verified"
	colAdvertGoals     = "Advertising Goals"
	colCampaignBudget  = "Campaign Budget"
	colBusinessName    = "Business Name"
	colWebsiteURL      = "Website URL"
	colNewsLongSum     = "Summary - Long"
	colNewsShortSum    = "Summary - Short"
	colProfileImage    = "Profile Image"
	colNewsletterTags  = "Newsletter Tags"
	colNewsVerified    = "VERIFIED"
	colNewsCategory    = "Newletter Category" // sic, the export header is misspelled
	colNewsFreq        = "Newsletter Freq"
	colStartingPrice   = "Starting Price"
	colSocialFbURL     = "Social - FB URL"
	colSocialTwitter   = "Social - Twitter"
)

// ImportCompanies migrates brands then newsletters into the companies table,
// sharing one dual-owner exclusion set, and returns the per-file results plus
// their combined total.
func ImportCompanies(ctx context.Context, p *Pipeline, brandRows, newsletterRows []Row, dualOwnerEmails map[string]struct{}) (brandResult, newsletterResult, total *Result, err error) {
	p.printf("Starting Company Migration (Brands + Newsletters)...\n\n")
	p.printf("Loaded %d dual owner emails to exclude\n\n", len(dualOwnerEmails))

	brandResult, err = importBrands(ctx, p, brandRows, dualOwnerEmails)
	if err != nil {
		return brandResult, nil, nil, err
	}
	newsletterResult, err = importNewsletters(ctx, p, newsletterRows, dualOwnerEmails)
	if err != nil {
		return brandResult, newsletterResult, nil, err
	}

	total = CombineResults(brandResult, newsletterResult)
	p.LogResult("Total Company Migration", total)
	return brandResult, newsletterResult, total, nil
}

func importBrands(ctx context.Context, p *Pipeline, rows []Row, dualOwnerEmails map[string]struct{}) (*Result, error) {
	p.printf("Migrating Brands...\n\n")
	p.printf("Found %d brands to migrate\n\n", len(rows))

	result := &Result{Total: len(rows)}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if i%50 == 0 {
			p.logProgress("Brands", i, len(rows))
		}

		id := strings.TrimSpace(row.Get(colUniqueID))
		creatorEmail := ownerEmail(row, brandOwnerColumns)

		if id == "" {
			result.skip(row, "Missing unique id")
			continue
		}
		if creatorEmail == "" {
			result.skip(row, "Missing Creator email")
			continue
		}
		if _, dual := dualOwnerEmails[creatorEmail]; dual {
			result.Skipped++
			p.printf("  skip: brand has dual owner: %s\n", row.Get(colBrandName))
			continue
		}

		userID, err := p.Store.UserIDByEmail(ctx, creatorEmail)
		if err != nil {
			result.fail(row, err)
			continue
		}
		if userID == "" {
			result.skip(row, fmt.Sprintf("User not found for email: %s", creatorEmail))
			continue
		}

		exists, err := p.Store.CompanyExists(ctx, id)
		if err != nil {
			result.fail(row, err)
			continue
		}
		if exists {
			result.Skipped++
			p.printf("  skip: company already exists: %s\n", row.Get(colBrandName))
			continue
		}

		company := &models.Company{
			ID:               id,
			UserId:           userID,
			CreatorEmail:     creatorEmail,
			Name:             CleanString(row.Get(colBrandName)),
			Website:          CleanString(row.Get(colBrandWebsite)),
			LongSummary:      CleanString(row.Get(colBrandLongSum)),
			ShortSummary:     CleanString(row.Get(colBrandShortSum)),
			LogoUrl:          CleanString(row.Get(colBrandLogo)),
			Tags:             orEmpty(ParseList(row.Get(colBrandTags))),
			Verified:         boolOrFalse(ParseBoolean(row.Get(colBrandVerified))),
			AdvertisingGoals: CleanString(row.Get(colAdvertGoals)),
			CampaignBudget:   CleanString(row.Get(colCampaignBudget)),
			IsNewsletter:     false,
			CreatedAt:        parseDateAssumed(row, colCreationDate, result),
			UpdatedAt:        parseDateAssumed(row, colModifiedDate, result),
		}

		if err := p.Store.CreateCompany(ctx, company); err != nil {
			result.fail(row, err)
			p.log("importBrands").WithField("brand", row.Get(colBrandName)).Error("failed to migrate brand: " + err.Error())
			continue
		}
		result.Succeeded++
	}

	p.logProgress("Brands", len(rows), len(rows))
	p.LogResult("Brand Migration", result)
	return result, nil
}

func importNewsletters(ctx context.Context, p *Pipeline, rows []Row, dualOwnerEmails map[string]struct{}) (*Result, error) {
	p.printf("Migrating Newsletters...\n\n")
	p.printf("Found %d newsletters to migrate\n\n", len(rows))

	result := &Result{Total: len(rows)}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if i%50 == 0 {
			p.logProgress("Newsletters", i, len(rows))
		}

		id := strings.TrimSpace(row.Get(colUniqueID))
		email := ownerEmail(row, newsletterOwnerColumns)

		if id == "" {
			result.skip(row, "Missing unique id")
			continue
		}
		if email == "" {
			result.skip(row, "Missing Owner/Creator email")
			continue
		}
		if _, dual := dualOwnerEmails[email]; dual {
			result.Skipped++
			p.printf("  skip: newsletter has dual owner: %s\n", row.Get(colBusinessName))
			continue
		}

		userID, err := p.Store.UserIDByEmail(ctx, email)
		if err != nil {
			result.fail(row, err)
			continue
		}
		if userID == "" {
			result.skip(row, fmt.Sprintf("User not found for email: %s", email))
			continue
		}

		exists, err := p.Store.CompanyExists(ctx, id)
		if err != nil {
			result.fail(row, err)
			continue
		}
		if exists {
			result.Skipped++
			p.printf("  skip: company already exists: %s\n", row.Get(colBusinessName))
			continue
		}

		// Newsletter summaries populate both the shared summary fields and
		// the newsletter-specific copies.
		longSummary := CleanString(row.Get(colNewsLongSum))
		shortSummary := CleanString(row.Get(colNewsShortSum))

		company := &models.Company{
			ID:                      id,
			UserId:                  userID,
			CreatorEmail:            email,
			Name:                    CleanString(row.Get(colBusinessName)),
			Website:                 CleanString(row.Get(colWebsiteURL)),
			LongSummary:             longSummary,
			ShortSummary:            shortSummary,
			NewsletterSummaryLong:   longSummary,
			NewsletterSummaryShort:  shortSummary,
			LogoUrl:                 CleanString(row.Get(colProfileImage)),
			Tags:                    orEmpty(ParseList(row.Get(colNewsletterTags))),
			Verified:                boolOrFalse(ParseBoolean(row.Get(colNewsVerified))),
			NewsletterCategory:      CleanString(row.Get(colNewsCategory)),
			NewsletterFreq:          CleanString(row.Get(colNewsFreq)),
			NewsletterStartingPrice: CleanString(row.Get(colStartingPrice)),
			SocialFbUrl:             CleanString(row.Get(colSocialFbURL)),
			SocialTwitterUrl:        CleanString(row.Get(colSocialTwitter)),
			IsNewsletter:            true,
			CreatedAt:               parseDateAssumed(row, colCreationDate, result),
			UpdatedAt:               parseDateAssumed(row, colModifiedDate, result),
		}

		if err := p.Store.CreateCompany(ctx, company); err != nil {
			result.fail(row, err)
			p.log("importNewsletters").WithField("newsletter", row.Get(colBusinessName)).Error("failed to migrate newsletter: " + err.Error())
			continue
		}
		result.Succeeded++
	}

	p.logProgress("Newsletters", len(rows), len(rows))
	p.LogResult("Newsletter Migration", result)
	return result, nil
}
