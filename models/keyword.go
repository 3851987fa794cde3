package models

import (
	"time"

	"gorm.io/gorm"
)

// Keyword pairs a target search keyword with the generation prompt used to
// draft articles for it. Used flips once an article has been written.
type Keyword struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"-"`
	Keyword   string         `gorm:"not null;size:200" json:"keyword"`
	Prompt    string         `gorm:"type:text" json:"prompt"`
	Used      bool           `gorm:"default:false" json:"used"`
}
