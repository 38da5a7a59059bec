package models

import (
	"time"
)

// Company holds both brands and newsletters; IsNewsletter selects which of
// the two field subsets is meaningful. The other subset stays NULL.
type Company struct {
	ID           string  `gorm:"primaryKey;size:64" json:"id"`
	UserId       string  `gorm:"size:64;not null;index" json:"user_id"`
	CreatorEmail string  `gorm:"size:255;not null" json:"creator_email"`
	Name         *string `gorm:"size:255" json:"name"`
	Website      *string `gorm:"size:1024" json:"website"`
	LongSummary  *string `gorm:"type:text" json:"long_summary"`
	ShortSummary *string `gorm:"size:1024" json:"short_summary"`
	LogoUrl      *string `gorm:"size:1024" json:"logo_url"`

	Tags     StringList `gorm:"not null" json:"tags"`
	Verified bool       `gorm:"not null;default:false" json:"verified"`

	// Brand-only fields.
	AdvertisingGoals *string `gorm:"type:text" json:"advertising_goals"`
	CampaignBudget   *string `gorm:"size:255" json:"campaign_budget"`

	// Newsletter-only fields.
	NewsletterSummaryLong   *string `gorm:"type:text" json:"newsletter_summary_long"`
	NewsletterSummaryShort  *string `gorm:"size:1024" json:"newsletter_summary_short"`
	NewsletterCategory      *string `gorm:"size:255" json:"newsletter_category"`
	NewsletterFreq          *string `gorm:"size:100" json:"newsletter_freq"`
	NewsletterStartingPrice *string `gorm:"size:100" json:"newsletter_starting_price"`
	NewsletterProofUrl      *string `gorm:"size:1024" json:"newsletter_proof_url"`
	SocialFbUrl             *string `gorm:"size:1024" json:"social_fb_url"`
	SocialTwitterUrl        *string `gorm:"size:1024" json:"social_twitter_url"`

	IsNewsletter bool      `gorm:"not null;default:false;index" json:"is_newsletter"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
