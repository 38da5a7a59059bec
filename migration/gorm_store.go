package migration

import (
	"context"
	"errors"

	"github.com/hectohq/hecto_backend/models"
	"gorm.io/gorm"
)

// GormStore implements Store and ValidationStore against the MySQL store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) UserExists(ctx context.Context, id, email string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? OR email = ?", id, email).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) UserIDByEmail(ctx context.Context, email string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).Select("id").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormStore) CompanyExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) NewsletterExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ? AND is_newsletter = ?", id, true).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreateCompany(ctx context.Context, company *models.Company) error {
	return s.db.WithContext(ctx).Create(company).Error
}

func (s *GormStore) SetNewsletterProofUrl(ctx context.Context, companyID, proofURL string) error {
	return s.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ?", companyID).
		Update("newsletter_proof_url", proofURL).Error
}

func (s *GormStore) CampaignExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Campaign{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreateCampaign(ctx context.Context, campaign *models.Campaign) error {
	return s.db.WithContext(ctx).Create(campaign).Error
}

func (s *GormStore) CreateNewsletterStat(ctx context.Context, stat *models.NewsletterStat) error {
	return s.db.WithContext(ctx).Create(stat).Error
}

func (s *GormStore) PackageExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Package{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreatePackage(ctx context.Context, pkg *models.Package) error {
	return s.db.WithContext(ctx).Create(pkg).Error
}

func (s *GormStore) CountUsers(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.User{}, "")
}

func (s *GormStore) CountMigratedUsers(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.User{}, "migrated_from_bubble = true")
}

func (s *GormStore) CountMigratedUsersWithBubbleID(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.User{}, "migrated_from_bubble = true AND bubble_user_id IS NOT NULL")
}

func (s *GormStore) CountUsersMissingEmail(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.User{}, "email = ''")
}

func (s *GormStore) CountCompanies(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.Company{}, "")
}

func (s *GormStore) CountCompaniesMissingName(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.Company{}, "name IS NULL")
}

func (s *GormStore) CountNewsletters(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.Company{}, "is_newsletter = true")
}

func (s *GormStore) CountNewslettersWithLongSummary(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.Company{}, "is_newsletter = true AND long_summary IS NOT NULL")
}

func (s *GormStore) CountNewslettersWithShortSummary(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.Company{}, "is_newsletter = true AND short_summary IS NOT NULL")
}

func (s *GormStore) CountCampaigns(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.Campaign{}, "")
}

func (s *GormStore) CountCampaignsMissingHeadline(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.Campaign{}, "headline IS NULL")
}

func (s *GormStore) CountNewsletterStats(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.NewsletterStat{}, "")
}

func (s *GormStore) CountPackages(ctx context.Context) (int64, error) {
	return s.count(ctx, &models.Package{}, "")
}

func (s *GormStore) UserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&models.User{}).Pluck("id", &ids).Error
	return ids, err
}

func (s *GormStore) CompanyIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&models.Company{}).Pluck("id", &ids).Error
	return ids, err
}

func (s *GormStore) CampaignRefs(ctx context.Context) ([]CampaignRef, error) {
	var refs []CampaignRef
	err := s.db.WithContext(ctx).Model(&models.Campaign{}).
		Select("id", "company_id", "headline").
		Find(&refs).Error
	return refs, err
}

func (s *GormStore) CompanyRefs(ctx context.Context) ([]CompanyRef, error) {
	var refs []CompanyRef
	err := s.db.WithContext(ctx).Model(&models.Company{}).
		Select("id", "user_id", "name").
		Find(&refs).Error
	return refs, err
}

func (s *GormStore) count(ctx context.Context, model interface{}, cond string) (int64, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(model)
	if cond != "" {
		q = q.Where(cond)
	}
	err := q.Count(&count).Error
	return count, err
}
