package models

import (
	"time"
)

// User keeps the Bubble unique id as its primary key so that every legacy
// cross-reference stays valid after migration.
type User struct {
	ID                    string     `gorm:"primaryKey;size:64" json:"id"`
	Email                 string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password              string     `gorm:"size:255;not null" json:"-"`
	FirstName             *string    `gorm:"size:100" json:"first_name"`
	LastName              *string    `gorm:"size:100" json:"last_name"`
	Intention             *string    `gorm:"size:255" json:"intention"`
	MailOptIn             bool       `gorm:"not null;default:false" json:"mail_opt_in"`
	ProfilePicUrl         *string    `gorm:"size:1024" json:"profile_pic_url"`
	StripeSellerId        *string    `gorm:"size:255" json:"stripe_seller_id"`
	MigratedFromBubble    bool       `gorm:"not null;default:false;index" json:"migrated_from_bubble"`
	BubbleUserId          *string    `gorm:"size:64" json:"bubble_user_id"`
	PasswordResetRequired bool       `gorm:"not null;default:false" json:"password_reset_required"`
	MigrationDate         *time.Time `json:"migration_date"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
