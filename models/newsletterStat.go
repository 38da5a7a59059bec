package models

import (
	"time"
)

// NewsletterStat is one reported snapshot of a newsletter's audience metrics.
// Unlike the other migrated entities it has no legacy id; rows are
// append-only and keyed by (company, date) only by convention.
type NewsletterStat struct {
	ID          int       `gorm:"primary_key" json:"id"`
	CompanyId   string    `gorm:"size:64;not null;index" json:"company_id"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Subscribers *int      `json:"subscribers"`
	OpenRate    *float64  `json:"open_rate"`
	ClickRate   *float64  `json:"click_rate"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
