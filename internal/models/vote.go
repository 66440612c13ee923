package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	VoteTypeUp   = "upvote"
	VoteTypeDown = "downvote"
)

func ValidVoteType(t string) bool {
	return t == VoteTypeUp || t == VoteTypeDown
}

// Vote is the ledger row for a user's current vote on a confession.
// The composite unique index enforces at most one row per pair; the row's
// existence is the sole authority for vote state, the confession counters
// are a cache derived from it.
type Vote struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_confession" json:"userId"`
	ConfessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_confession;index" json:"confessionId"`
	VoteType     string    `gorm:"size:10;not null" json:"voteType"`
	CreatedAt    time.Time `json:"createdAt"`
}
