package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is authored by a registered user on a confession. Deleting the
// confession cascade-deletes its comments; deleting a comment never touches
// the confession's vote counters.
type Comment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content      string    `gorm:"size:500;not null" json:"content"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ConfessionID uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_confession_created,priority:1" json:"confessionId"`
	CreatedAt    time.Time `gorm:"index:idx_comments_confession_created,priority:2" json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Author       User      `gorm:"foreignKey:UserID" json:"author"`
}
