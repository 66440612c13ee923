package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. IsAdmin is recomputed from the configured
// admin allow-list whenever the record is created or saved, never
// set by request input. JSON exposure is limited to what comment authorship
// needs; auth responses use their own DTO.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"-"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Image     string    `gorm:"size:500" json:"image,omitempty"`
	Password  string    `gorm:"not null" json:"-"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
