package models

import (
	"time"

	"github.com/google/uuid"
)

// Confession tags. Anything outside this set falls back to TagOther.
const (
	TagLove       = "Love"
	TagCareer     = "Career"
	TagSchool     = "School"
	TagFamily     = "Family"
	TagFriendship = "Friendship"
	TagHealth     = "Health"
	TagMoney      = "Money"
	TagPersonal   = "Personal"
	TagOther      = "Other"
)

var ConfessionTags = []string{
	TagLove, TagCareer, TagSchool, TagFamily, TagFriendship,
	TagHealth, TagMoney, TagPersonal, TagOther,
}

func ValidTag(tag string) bool {
	for _, t := range ConfessionTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Confession is an anonymous post. Upvotes/Downvotes are cached aggregates
// over the vote ledger; TotalVotes is derived from them and never written
// independently. AuthorIP is kept for moderation and never serialized.
type Confession struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	Body       string    `gorm:"size:2000;not null" json:"body"`
	Tag        string    `gorm:"size:20;not null;default:'Other';index:idx_confessions_tag_created,priority:1" json:"tag"`
	Upvotes    int       `gorm:"not null;default:0" json:"upvotes"`
	Downvotes  int       `gorm:"not null;default:0" json:"downvotes"`
	TotalVotes int       `gorm:"not null;default:0;index:idx_confessions_votes_created,priority:1" json:"totalVotes"`
	IsFeatured bool      `gorm:"not null;default:false" json:"isFeatured"`
	AuthorIP   string    `gorm:"size:64" json:"-"`
	CreatedAt  time.Time `gorm:"index;index:idx_confessions_tag_created,priority:2;index:idx_confessions_votes_created,priority:2" json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DeriveTotalVotes recomputes the cached net score. Every write path that
// touches the counters calls this before persisting.
func (c *Confession) DeriveTotalVotes() {
	c.TotalVotes = c.Upvotes - c.Downvotes
}
