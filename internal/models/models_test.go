package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTotalVotes(t *testing.T) {
	c := Confession{Upvotes: 7, Downvotes: 3}
	c.DeriveTotalVotes()
	assert.Equal(t, 4, c.TotalVotes)

	c = Confession{Upvotes: 1, Downvotes: 5}
	c.DeriveTotalVotes()
	assert.Equal(t, -4, c.TotalVotes, "net score may go negative even though counters cannot")

	c = Confession{}
	c.DeriveTotalVotes()
	assert.Equal(t, 0, c.TotalVotes)
}

func TestValidTag(t *testing.T) {
	for _, tag := range ConfessionTags {
		assert.True(t, ValidTag(tag))
	}
	assert.False(t, ValidTag(""))
	assert.False(t, ValidTag("love"), "tags are case sensitive")
	assert.False(t, ValidTag("Existential"))
}

func TestValidVoteType(t *testing.T) {
	assert.True(t, ValidVoteType(VoteTypeUp))
	assert.True(t, ValidVoteType(VoteTypeDown))
	assert.False(t, ValidVoteType(""))
	assert.False(t, ValidVoteType("Upvote"))
}
