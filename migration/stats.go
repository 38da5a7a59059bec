package migration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hectohq/hecto_backend/models"
)

const (
	colStatNewsletter = "Newsletter"
	colStatDate       = "date"
	colStatUpdated    = "Updated"
	colSubscribers    = "Subscribers"
	colOpenRate       = "Open Rate"
	colCTR            = "CTR"
	colProof          = "Proof"
)

type proofCandidate struct {
	proof string
	date  time.Time
}

// ImportNewsletterStats creates one metrics row per legacy stat record and
// afterwards back-fills each company's proof url from its chronologically
// latest row. Stats carry no legacy id, so there is no existence check:
// re-running this importer duplicates rows.
//
// Proof tie-break: a candidate survives only while it is strictly later than
// each new row, so two rows on the same date resolve to whichever came later
// in file order.
func ImportNewsletterStats(ctx context.Context, p *Pipeline, rows []Row) (*Result, error) {
	p.printf("Starting Newsletter Stats Migration...\n\n")
	p.printf("Found %d newsletter stats to migrate\n\n", len(rows))

	result := &Result{Total: len(rows)}
	latestProofs := make(map[string]proofCandidate)
	var proofOrder []string

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if i%50 == 0 {
			p.logProgress("Newsletter Stats", i, len(rows))
		}

		newsletterID := strings.TrimSpace(row.Get(colStatNewsletter))
		if newsletterID == "" {
			result.skip(row, "Missing Newsletter ID")
			continue
		}

		isNewsletter, err := p.Store.NewsletterExists(ctx, newsletterID)
		if err != nil {
			result.fail(row, err)
			continue
		}
		if !isNewsletter {
			result.skip(row, fmt.Sprintf("Newsletter (Company) not found for ID: %s", newsletterID))
			continue
		}

		statDate := statEffectiveDate(row, result)

		stat := &models.NewsletterStat{
			CompanyId:   newsletterID,
			Date:        statDate,
			Subscribers: ParseIntValue(row.Get(colSubscribers)),
			OpenRate:    ParseFloatValue(row.Get(colOpenRate)),
			ClickRate:   ParseFloatValue(row.Get(colCTR)),
			CreatedAt:   parseDateAssumed(row, colCreationDate, result),
		}

		if err := p.Store.CreateNewsletterStat(ctx, stat); err != nil {
			result.fail(row, err)
			p.log("ImportNewsletterStats").WithField("newsletter", newsletterID).Error("failed to migrate newsletter stat: " + err.Error())
			continue
		}

		if proof := CleanString(row.Get(colProof)); proof != nil {
			current, tracked := latestProofs[newsletterID]
			if !tracked {
				proofOrder = append(proofOrder, newsletterID)
			}
			if !tracked || !statDate.Before(current.date) {
				latestProofs[newsletterID] = proofCandidate{proof: *proof, date: statDate}
			}
		}

		result.Succeeded++
	}

	p.printf("\nUpdating %d companies with latest proof URLs...\n\n", len(latestProofs))
	for _, companyID := range proofOrder {
		candidate := latestProofs[companyID]
		if err := p.Store.SetNewsletterProofUrl(ctx, companyID, candidate.proof); err != nil {
			p.log("ImportNewsletterStats").WithField("company_id", companyID).Warn("failed to update proof URL: " + err.Error())
		}
	}

	p.logProgress("Newsletter Stats", len(rows), len(rows))
	p.LogResult("Newsletter Stats Migration", result)
	p.printf("Updated %d companies with proof URLs\n\n", len(latestProofs))
	return result, nil
}

// The effective date is the first non-blank of the explicit date column, the
// "Updated" column and the creation date; parsing failures fall back to now.
func statEffectiveDate(row Row, result *Result) time.Time {
	for _, column := range []string{colStatDate, colStatUpdated, colCreationDate} {
		if strings.TrimSpace(row.Get(column)) != "" {
			return parseDateAssumed(row, column, result)
		}
	}
	// All three blank: same substituted-now fallback, booked once.
	return parseDateAssumed(row, colStatDate, result)
}
