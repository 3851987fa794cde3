package models

import (
	"time"

	"gorm.io/gorm"
)

type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "draft"
	ArticlePublished ArticleStatus = "published"
)

type Article struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"-"`
	Title     string         `gorm:"not null;size:300" json:"title"`
	Slug      string         `gorm:"size:300" json:"slug"`
	Content   string         `gorm:"type:text" json:"content"`
	Status    ArticleStatus  `gorm:"not null;size:20;default:draft" json:"status"`
	KeywordID *uint          `gorm:"index" json:"keyword_id"`
	Keyword   *Keyword       `gorm:"foreignKey:KeywordID" json:"keyword,omitempty"`
}

func (s ArticleStatus) Valid() bool {
	return s == ArticleDraft || s == ArticlePublished
}
