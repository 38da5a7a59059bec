package models

import (
	"time"
)

// Package is a newsletter's advertised placement offering. CompanyId is
// optional: some legacy packages were drafted before their newsletter existed.
type Package struct {
	ID                 string     `gorm:"primaryKey;size:64" json:"id"`
	CompanyId          *string    `gorm:"size:64;index" json:"company_id"`
	Title              *string    `gorm:"size:512" json:"title"`
	ShortSummary       *string    `gorm:"size:1024" json:"short_summary"`
	Description        *string    `gorm:"type:text" json:"description"`
	Price              *string    `gorm:"size:100" json:"price"`
	Status             *string    `gorm:"size:100" json:"status"`
	BodyCharacterLimit *string    `gorm:"size:100" json:"body_character_limit"`
	CharacterLimit     *string    `gorm:"size:100" json:"character_limit"`
	ImageRequired      bool       `gorm:"not null;default:false" json:"image_required"`
	TextRequired       bool       `gorm:"not null;default:false" json:"text_required"`
	ExampleImageUrl    *string    `gorm:"size:1024" json:"example_image_url"`
	ValidFrom          *time.Time `json:"valid_from"`
	ValidTo            *time.Time `json:"valid_to"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
