package dto

import "github.com/google/uuid"

type CreateReportRequest struct {
	ContentType string    `json:"contentType"`
	ContentID   uuid.UUID `json:"contentId"`
	Reason      string    `json:"reason"`
}

type ActionReportRequest struct {
	Status    string `json:"status"`
	AdminNote string `json:"adminNote,omitempty"`
}
