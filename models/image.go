package models

import (
	"time"
)

type Image struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       *User     `gorm:"foreignKey:UserID" json:"-"`
	StorageKey string    `gorm:"uniqueIndex;not null;size:64" json:"storage_key"`
	Filename   string    `gorm:"not null;size:300" json:"filename"`
	URL        string    `gorm:"not null;size:500" json:"url"`
	AltText    string    `gorm:"size:300" json:"alt_text"`
}
