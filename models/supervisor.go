package models

import (
	"time"

	"gorm.io/gorm"
)

// Supervisor is a content-reviewer profile. Every supervisor belongs to
// exactly one account and is only visible through owner-filtered queries.
type Supervisor struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	User        *User          `gorm:"foreignKey:UserID" json:"-"`
	Name        string         `gorm:"not null;size:200" json:"name"`
	Title       string         `gorm:"size:200" json:"title"`
	Description string         `gorm:"size:1000" json:"description"`
	AvatarURL   string         `gorm:"size:500" json:"avatar_url"`
	WebsiteURL  string         `gorm:"size:500" json:"website_url"`
	TwitterURL  string         `gorm:"size:500" json:"twitter_url"`
	LinkedinURL string         `gorm:"size:500" json:"linkedin_url"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
}
