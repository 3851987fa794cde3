package models

import (
	"time"
)

// ArticleSupervisor links an article to the supervisor currently reviewing
// it. At most one row exists per article: assigning a new supervisor
// deletes the old row before inserting, and deleting either side deletes
// the row. Rows are hard-deleted so the replace semantics stay visible in
// the table itself.
type ArticleSupervisor struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	ArticleID    uint        `gorm:"not null;index" json:"article_id"`
	Article      *Article    `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	SupervisorID uint        `gorm:"not null;index" json:"supervisor_id"`
	Supervisor   *Supervisor `gorm:"foreignKey:SupervisorID" json:"supervisor,omitempty"`
}
