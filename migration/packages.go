package migration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hectohq/hecto_backend/models"
)

const (
	colPkgNewsletterID = "Newsletter ID"
	colPkgTitle        = "Title"
	colPkgShortSummary = "Short Summary"
	colPkgDetail       = "Package Detail"
	colPkgPrice        = "Price"
	colPkgStatus       = "Status"
	colPkgBodyCharLim  = "bodyCharacterLimit"
	colPkgCharLim      = "characterLimit"
	colPkgImageReq     = "imageReq"
	colPkgTextReq      = "TextReq"
	colPkgExampleImgs  = "Example Images"
	colPkgValidFrom    = "validFrom"
	colPkgValidTo      = "validTo"
)

// ImportPackages creates one package per legacy row. The owning newsletter is
// optional: when the column is blank the package is created unowned, but a
// non-blank value that does not resolve to a newsletter-type company skips
// the row.
func ImportPackages(ctx context.Context, p *Pipeline, rows []Row) (*Result, error) {
	p.printf("Starting Package Migration...\n\n")
	p.printf("Found %d packages to migrate\n\n", len(rows))

	result := &Result{Total: len(rows)}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if i%50 == 0 {
			p.logProgress("Packages", i, len(rows))
		}

		id := strings.TrimSpace(row.Get(colUniqueID))
		if id == "" {
			result.skip(row, "Missing unique id")
			continue
		}

		var companyID *string
		if newsletterID := strings.TrimSpace(row.Get(colPkgNewsletterID)); newsletterID != "" {
			isNewsletter, err := p.Store.NewsletterExists(ctx, newsletterID)
			if err != nil {
				result.fail(row, err)
				continue
			}
			if !isNewsletter {
				result.skip(row, fmt.Sprintf("Newsletter (Company) not found for ID: %s", newsletterID))
				continue
			}
			companyID = &newsletterID
		}

		exists, err := p.Store.PackageExists(ctx, id)
		if err != nil {
			result.fail(row, err)
			continue
		}
		if exists {
			result.Skipped++
			p.printf("  skip: package already exists: %s\n", row.Get(colPkgTitle))
			continue
		}

		pkg := &models.Package{
			ID:                 id,
			CompanyId:          companyID,
			Title:              CleanString(row.Get(colPkgTitle)),
			ShortSummary:       CleanString(row.Get(colPkgShortSummary)),
			Description:        CleanString(row.Get(colPkgDetail)),
			Price:              CleanString(row.Get(colPkgPrice)),
			Status:             CleanString(row.Get(colPkgStatus)),
			BodyCharacterLimit: CleanString(row.Get(colPkgBodyCharLim)),
			CharacterLimit:     CleanString(row.Get(colPkgCharLim)),
			ImageRequired:      boolOrFalse(ParseBoolean(row.Get(colPkgImageReq))),
			TextRequired:       boolOrFalse(ParseBoolean(row.Get(colPkgTextReq))),
			ExampleImageUrl:    CleanString(row.Get(colPkgExampleImgs)),
			ValidFrom:          optionalDate(row, colPkgValidFrom, result),
			ValidTo:            optionalDate(row, colPkgValidTo, result),
			CreatedAt:          parseDateAssumed(row, colCreationDate, result),
			UpdatedAt:          parseDateAssumed(row, colModifiedDate, result),
		}

		if err := p.Store.CreatePackage(ctx, pkg); err != nil {
			result.fail(row, err)
			p.log("ImportPackages").WithField("title", row.Get(colPkgTitle)).Error("failed to migrate package: " + err.Error())
			continue
		}
		result.Succeeded++
	}

	p.logProgress("Packages", len(rows), len(rows))
	p.LogResult("Package Migration", result)
	return result, nil
}

// Validity bounds differ from creation timestamps: a blank cell means no
// bound at all, not "now".
func optionalDate(row Row, column string, result *Result) *time.Time {
	if strings.TrimSpace(row.Get(column)) == "" {
		return nil
	}
	t := parseDateAssumed(row, column, result)
	return &t
}
