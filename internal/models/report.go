package models

import (
	"time"

	"github.com/google/uuid"
)

// Report content types and statuses.
const (
	ReportContentConfession = "confession"
	ReportContentComment    = "comment"

	ReportStatusPending   = "pending"
	ReportStatusReviewed  = "reviewed"
	ReportStatusActioned  = "actioned"
	ReportStatusDismissed = "dismissed"
)

// Report is a user flag on a confession or comment, queued for admin review.
type Report struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterID  uuid.UUID `gorm:"type:uuid;not null;index" json:"reporterId"`
	ContentType string    `gorm:"not null;size:20" json:"contentType"`
	ContentID   uuid.UUID `gorm:"type:uuid;not null;index" json:"contentId"`
	Reason      string    `gorm:"not null;size:500" json:"reason"`
	Status      string    `gorm:"not null;default:'pending';size:20;index" json:"status"`
	AdminNote   string    `gorm:"size:1000" json:"adminNote,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Reporter    User      `gorm:"foreignKey:ReporterID" json:"-"`
}
