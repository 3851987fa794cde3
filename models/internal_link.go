package models

import (
	"time"
)

// InternalLink maps a keyword to the URL it should link to when it appears
// in article bodies.
type InternalLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	Keyword   string    `gorm:"not null;size:200" json:"keyword"`
	TargetURL string    `gorm:"not null;size:500" json:"target_url"`
}
