package migration

import (
	"context"
	"fmt"
	"strings"

	"github.com/hectohq/hecto_backend/models"
)

const (
	colBrandRequesting  = "brandRequesting"
	colCampaignCreator  = "Creator"
	colCampaignHeadline = "Campaign Headline"
	colCampaignLongDesc = "Campaign Long Description"
	colTargetAudience   = "targetAudience"
	colPartnershipTypes = "acceptedPartnershipTypes"
)

// ImportCampaigns creates one campaign per legacy row. The requesting brand
// is the only hard dependency: rows whose company cannot be resolved are
// skipped. An unresolvable creator email only produces a warning; the
// campaign is still created without a creator reference.
func ImportCampaigns(ctx context.Context, p *Pipeline, rows []Row) (*Result, error) {
	p.printf("Starting Campaign Migration...\n\n")
	p.printf("Found %d campaigns to migrate\n\n", len(rows))

	result := &Result{Total: len(rows)}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if i%50 == 0 {
			p.logProgress("Campaigns", i, len(rows))
		}

		id := strings.TrimSpace(row.Get(colUniqueID))
		if id == "" {
			result.skip(row, "Missing unique id")
			continue
		}

		brandID := strings.TrimSpace(row.Get(colBrandRequesting))
		if brandID == "" {
			result.skip(row, "Missing brandRequesting field")
			continue
		}
		companyExists, err := p.Store.CompanyExists(ctx, brandID)
		if err != nil {
			result.fail(row, err)
			continue
		}
		if !companyExists {
			result.skip(row, fmt.Sprintf("Company not found for brandRequesting ID: %s", brandID))
			continue
		}

		var creatorID *string
		if creatorEmail := strings.ToLower(strings.TrimSpace(row.Get(colCampaignCreator))); creatorEmail != "" {
			userID, err := p.Store.UserIDByEmail(ctx, creatorEmail)
			if err != nil {
				result.fail(row, err)
				continue
			}
			if userID == "" {
				result.warnf(row, "Creator not found for email: %s (campaign still created)", creatorEmail)
				p.log("ImportCampaigns").WithField("email", creatorEmail).Warn("campaign creator not found")
			} else {
				creatorID = &userID
			}
		}

		exists, err := p.Store.CampaignExists(ctx, id)
		if err != nil {
			result.fail(row, err)
			continue
		}
		if exists {
			result.Skipped++
			p.printf("  skip: campaign already exists: %s\n", row.Get(colCampaignHeadline))
			continue
		}

		campaign := &models.Campaign{
			ID:                       id,
			CompanyId:                brandID,
			CreatorId:                creatorID,
			Headline:                 CleanString(row.Get(colCampaignHeadline)),
			LongDescription:          CleanString(row.Get(colCampaignLongDesc)),
			TargetAudience:           CleanString(row.Get(colTargetAudience)),
			AcceptedPartnershipTypes: orEmpty(ParseList(row.Get(colPartnershipTypes))),
			CreatedAt:                parseDateAssumed(row, colCreationDate, result),
			UpdatedAt:                parseDateAssumed(row, colModifiedDate, result),
		}

		if err := p.Store.CreateCampaign(ctx, campaign); err != nil {
			result.fail(row, err)
			p.log("ImportCampaigns").WithField("headline", row.Get(colCampaignHeadline)).Error("failed to migrate campaign: " + err.Error())
			continue
		}
		result.Succeeded++
	}

	p.logProgress("Campaigns", len(rows), len(rows))
	p.LogResult("Campaign Migration", result)
	return result, nil
}
