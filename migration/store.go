package migration

import (
	"context"

	"github.com/hectohq/hecto_backend/models"
)

// Store is the narrow persistence surface the importers need: existence
// checks, lookups by secondary key, creates, and the one proof-url update.
// The gorm implementation lives in gorm_store.go; tests inject a fake.
type Store interface {
	// UserExists reports whether an identity with the given legacy id OR the
	// given email already exists. Either collision blocks re-creation.
	UserExists(ctx context.Context, id, email string) (bool, error)
	// UserIDByEmail returns "" when no identity carries the email.
	UserIDByEmail(ctx context.Context, email string) (string, error)
	CreateUser(ctx context.Context, user *models.User) error

	CompanyExists(ctx context.Context, id string) (bool, error)
	// NewsletterExists reports whether a company with the id exists AND has
	// the newsletter discriminator set.
	NewsletterExists(ctx context.Context, id string) (bool, error)
	CreateCompany(ctx context.Context, company *models.Company) error
	SetNewsletterProofUrl(ctx context.Context, companyID, proofURL string) error

	CampaignExists(ctx context.Context, id string) (bool, error)
	CreateCampaign(ctx context.Context, campaign *models.Campaign) error

	CreateNewsletterStat(ctx context.Context, stat *models.NewsletterStat) error

	PackageExists(ctx context.Context, id string) (bool, error)
	CreatePackage(ctx context.Context, pkg *models.Package) error
}

// CampaignRef and CompanyRef are the projections the orphan scan reads.
type CampaignRef struct {
	ID        string
	CompanyId string
	Headline  *string
}

type CompanyRef struct {
	ID     string
	UserId string
	Name   *string
}

// ValidationStore is the read-only surface of the validator and the status
// tool. Id listings exist so the orphan scan can run against in-memory sets
// instead of issuing one lookup per row.
type ValidationStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountMigratedUsers(ctx context.Context) (int64, error)
	CountMigratedUsersWithBubbleID(ctx context.Context) (int64, error)
	CountUsersMissingEmail(ctx context.Context) (int64, error)

	CountCompanies(ctx context.Context) (int64, error)
	CountCompaniesMissingName(ctx context.Context) (int64, error)
	CountNewsletters(ctx context.Context) (int64, error)
	CountNewslettersWithLongSummary(ctx context.Context) (int64, error)
	CountNewslettersWithShortSummary(ctx context.Context) (int64, error)

	CountCampaigns(ctx context.Context) (int64, error)
	CountCampaignsMissingHeadline(ctx context.Context) (int64, error)
	CountNewsletterStats(ctx context.Context) (int64, error)
	CountPackages(ctx context.Context) (int64, error)

	UserIDs(ctx context.Context) ([]string, error)
	CompanyIDs(ctx context.Context) ([]string, error)
	CampaignRefs(ctx context.Context) ([]CampaignRef, error)
	CompanyRefs(ctx context.Context) ([]CompanyRef, error)
}
