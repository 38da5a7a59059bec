package migration

import (
	"context"
	"io"
	"strings"

	"github.com/hectohq/hecto_backend/models"
	"github.com/sirupsen/logrus"
)

// fakeStore is the in-memory Store/ValidationStore used by the importer and
// validator tests. Per-entity error maps let a test fail one row while the
// rest of the batch proceeds.
type fakeStore struct {
	users     []*models.User
	companies []*models.Company
	campaigns []*models.Campaign
	stats     []*models.NewsletterStat
	packages  []*models.Package

	proofCalls []string

	createUserErr     map[string]error
	createCompanyErr  map[string]error
	createCampaignErr map[string]error
	createPackageErr  map[string]error
	createStatErr     error
	setProofErr       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		createUserErr:     map[string]error{},
		createCompanyErr:  map[string]error{},
		createCampaignErr: map[string]error{},
		createPackageErr:  map[string]error{},
	}
}

func newTestPipeline(store Store) *Pipeline {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	p := NewPipeline(store, logger)
	p.Out = io.Discard
	return p
}

func (s *fakeStore) UserExists(ctx context.Context, id, email string) (bool, error) {
	for _, u := range s.users {
		if u.ID == id || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) UserIDByEmail(ctx context.Context, email string) (string, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u.ID, nil
		}
	}
	return "", nil
}

func (s *fakeStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.createUserErr[user.ID]; err != nil {
		return err
	}
	s.users = append(s.users, user)
	return nil
}

func (s *fakeStore) CompanyExists(ctx context.Context, id string) (bool, error) {
	return s.findCompany(id) != nil, nil
}

func (s *fakeStore) NewsletterExists(ctx context.Context, id string) (bool, error) {
	c := s.findCompany(id)
	return c != nil && c.IsNewsletter, nil
}

func (s *fakeStore) CreateCompany(ctx context.Context, company *models.Company) error {
	if err := s.createCompanyErr[company.ID]; err != nil {
		return err
	}
	s.companies = append(s.companies, company)
	return nil
}

func (s *fakeStore) SetNewsletterProofUrl(ctx context.Context, companyID, proofURL string) error {
	if s.setProofErr != nil {
		return s.setProofErr
	}
	s.proofCalls = append(s.proofCalls, companyID)
	if c := s.findCompany(companyID); c != nil {
		c.NewsletterProofUrl = &proofURL
	}
	return nil
}

func (s *fakeStore) CampaignExists(ctx context.Context, id string) (bool, error) {
	for _, c := range s.campaigns {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) CreateCampaign(ctx context.Context, campaign *models.Campaign) error {
	if err := s.createCampaignErr[campaign.ID]; err != nil {
		return err
	}
	s.campaigns = append(s.campaigns, campaign)
	return nil
}

func (s *fakeStore) CreateNewsletterStat(ctx context.Context, stat *models.NewsletterStat) error {
	if s.createStatErr != nil {
		return s.createStatErr
	}
	s.stats = append(s.stats, stat)
	return nil
}

func (s *fakeStore) PackageExists(ctx context.Context, id string) (bool, error) {
	for _, p := range s.packages {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) CreatePackage(ctx context.Context, pkg *models.Package) error {
	if err := s.createPackageErr[pkg.ID]; err != nil {
		return err
	}
	s.packages = append(s.packages, pkg)
	return nil
}

func (s *fakeStore) findCompany(id string) *models.Company {
	for _, c := range s.companies {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *fakeStore) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

func (s *fakeStore) CountMigratedUsers(ctx context.Context) (int64, error) {
	var n int64
	for _, u := range s.users {
		if u.MigratedFromBubble {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CountMigratedUsersWithBubbleID(ctx context.Context) (int64, error) {
	var n int64
	for _, u := range s.users {
		if u.MigratedFromBubble && u.BubbleUserId != nil {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CountUsersMissingEmail(ctx context.Context) (int64, error) {
	var n int64
	for _, u := range s.users {
		if strings.TrimSpace(u.Email) == "" {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CountCompanies(ctx context.Context) (int64, error) {
	return int64(len(s.companies)), nil
}

func (s *fakeStore) CountCompaniesMissingName(ctx context.Context) (int64, error) {
	var n int64
	for _, c := range s.companies {
		if c.Name == nil {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CountNewsletters(ctx context.Context) (int64, error) {
	var n int64
	for _, c := range s.companies {
		if c.IsNewsletter {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CountNewslettersWithLongSummary(ctx context.Context) (int64, error) {
	var n int64
	for _, c := range s.companies {
		if c.IsNewsletter && c.LongSummary != nil {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CountNewslettersWithShortSummary(ctx context.Context) (int64, error) {
	var n int64
	for _, c := range s.companies {
		if c.IsNewsletter && c.ShortSummary != nil {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CountCampaigns(ctx context.Context) (int64, error) {
	return int64(len(s.campaigns)), nil
}

func (s *fakeStore) CountCampaignsMissingHeadline(ctx context.Context) (int64, error) {
	var n int64
	for _, c := range s.campaigns {
		if c.Headline == nil {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CountNewsletterStats(ctx context.Context) (int64, error) {
	return int64(len(s.stats)), nil
}

func (s *fakeStore) CountPackages(ctx context.Context) (int64, error) {
	return int64(len(s.packages)), nil
}

func (s *fakeStore) UserIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(s.users))
	for _, u := range s.users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

func (s *fakeStore) CompanyIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(s.companies))
	for _, c := range s.companies {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (s *fakeStore) CampaignRefs(ctx context.Context) ([]CampaignRef, error) {
	refs := make([]CampaignRef, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		refs = append(refs, CampaignRef{ID: c.ID, CompanyId: c.CompanyId, Headline: c.Headline})
	}
	return refs, nil
}

func (s *fakeStore) CompanyRefs(ctx context.Context) ([]CompanyRef, error) {
	refs := make([]CompanyRef, 0, len(s.companies))
	for _, c := range s.companies {
		refs = append(refs, CompanyRef{ID: c.ID, UserId: c.UserId, Name: c.Name})
	}
	return refs, nil
}

// seedUser and seedNewsletter keep the importer tests short.
func (s *fakeStore) seedUser(id, email string) {
	s.users = append(s.users, &models.User{ID: id, Email: email, MigratedFromBubble: true, BubbleUserId: &id})
}

func (s *fakeStore) seedCompany(id, userID string, isNewsletter bool) {
	name := "company " + id
	s.companies = append(s.companies, &models.Company{ID: id, UserId: userID, Name: &name, IsNewsletter: isNewsletter})
}
