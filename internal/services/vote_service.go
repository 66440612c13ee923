package services

import (
	"errors"
	"strings"

	"github.com/confessly/confessly-backend/internal/dto"
	"github.com/confessly/confessly-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidVoteType = errors.New("invalid vote type")

// Vote actions reported to the caller.
const (
	VoteActionCreated = "created"
	VoteActionRemoved = "removed"
	VoteActionUpdated = "updated"
)

// VoteService mutates the vote ledger and the confession's cached counters.
type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{db: db}
}

// CastVote applies toggle semantics for one (voter, confession) pair:
// no existing vote creates one, a repeat of the same direction removes it,
// the opposite direction switches it in place. Counters never go below zero
// and totalVotes is rederived before every persist.
func (s *VoteService) CastVote(userID, confessionID uuid.UUID, voteType string) (*dto.VoteResult, error) {
	if !models.ValidVoteType(voteType) {
		return nil, ErrInvalidVoteType
	}

	var confession models.Confession
	if err := s.db.First(&confession, "id = ?", confessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfessionNotFound
		}
		return nil, err
	}

	var existing models.Vote
	err := s.db.Where("user_id = ? AND confession_id = ?", userID, confessionID).
		First(&existing).Error
	if err == nil {
		return s.resolveExisting(&confession, &existing, voteType)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vote := models.Vote{
		ID:           uuid.New(),
		UserID:       userID,
		ConfessionID: confessionID,
		VoteType:     voteType,
	}
	if err := s.db.Create(&vote).Error; err != nil {
		if isUniqueViolation(err) {
			// Lost a same-pair race: another request inserted the ledger row
			// between our read and write. Treat it as the existing-vote case.
			if err := s.db.Where("user_id = ? AND confession_id = ?", userID, confessionID).
				First(&existing).Error; err != nil {
				return nil, err
			}
			return s.resolveExisting(&confession, &existing, voteType)
		}
		return nil, err
	}

	if voteType == models.VoteTypeUp {
		confession.Upvotes++
	} else {
		confession.Downvotes++
	}
	if err := s.saveCounters(&confession); err != nil {
		return nil, err
	}

	return &dto.VoteResult{
		Action:     VoteActionCreated,
		VoteType:   voteType,
		Upvotes:    confession.Upvotes,
		Downvotes:  confession.Downvotes,
		TotalVotes: confession.TotalVotes,
	}, nil
}

// resolveExisting handles the toggle-off and switch branches.
func (s *VoteService) resolveExisting(confession *models.Confession, existing *models.Vote, voteType string) (*dto.VoteResult, error) {
	if existing.VoteType == voteType {
		if err := s.db.Delete(existing).Error; err != nil {
			return nil, err
		}
		if voteType == models.VoteTypeUp {
			confession.Upvotes = clampZero(confession.Upvotes - 1)
		} else {
			confession.Downvotes = clampZero(confession.Downvotes - 1)
		}
		if err := s.saveCounters(confession); err != nil {
			return nil, err
		}
		return &dto.VoteResult{
			Action:     VoteActionRemoved,
			Upvotes:    confession.Upvotes,
			Downvotes:  confession.Downvotes,
			TotalVotes: confession.TotalVotes,
		}, nil
	}

	if err := s.db.Model(existing).Update("vote_type", voteType).Error; err != nil {
		return nil, err
	}
	if voteType == models.VoteTypeUp {
		confession.Upvotes++
		confession.Downvotes = clampZero(confession.Downvotes - 1)
	} else {
		confession.Downvotes++
		confession.Upvotes = clampZero(confession.Upvotes - 1)
	}
	if err := s.saveCounters(confession); err != nil {
		return nil, err
	}
	return &dto.VoteResult{
		Action:     VoteActionUpdated,
		VoteType:   voteType,
		Upvotes:    confession.Upvotes,
		Downvotes:  confession.Downvotes,
		TotalVotes: confession.TotalVotes,
	}, nil
}

func (s *VoteService) saveCounters(confession *models.Confession) error {
	confession.DeriveTotalVotes()
	return s.db.Model(confession).
		Select("upvotes", "downvotes", "total_votes", "updated_at").
		Updates(map[string]interface{}{
			"upvotes":     confession.Upvotes,
			"downvotes":   confession.Downvotes,
			"total_votes": confession.TotalVotes,
		}).Error
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
