package models

import (
	"time"
)

type Campaign struct {
	ID                       string     `gorm:"primaryKey;size:64" json:"id"`
	CompanyId                string     `gorm:"size:64;not null;index" json:"company_id"`
	CreatorId                *string    `gorm:"size:64" json:"creator_id"`
	Headline                 *string    `gorm:"size:512" json:"headline"`
	LongDescription          *string    `gorm:"type:text" json:"long_description"`
	TargetAudience           *string    `gorm:"type:text" json:"target_audience"`
	AcceptedPartnershipTypes StringList `gorm:"not null" json:"accepted_partnership_types"`
	CreatedAt                time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
