package services

import (
	"errors"
	"strings"

	"github.com/confessly/confessly-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

const maxCommentLen = 500

// CommentService handles comment creation and admin deletion.
type CommentService struct {
	db     *gorm.DB
	filter *ContentFilter
}

func NewCommentService(db *gorm.DB, filter *ContentFilter) *CommentService {
	return &CommentService{db: db, filter: filter}
}

// Add creates a comment by an authenticated user on an existing confession.
func (s *CommentService) Add(userID, confessionID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("comment content is required")
	}
	if len(content) > maxCommentLen {
		return nil, errors.New("comment must be less than 500 characters")
	}
	if ok, reason := s.filter.Check(content); !ok {
		return nil, errors.New(s.filter.RejectionMessage(reason))
	}

	var confession models.Confession
	if err := s.db.First(&confession, "id = ?", confessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfessionNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		ID:           uuid.New(),
		Content:      content,
		UserID:       userID,
		ConfessionID: confessionID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Author").First(&comment, "id = ?", comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a single comment. Vote counters on the parent confession
// are untouched; comments are not part of any vote aggregate.
func (s *CommentService) Delete(id uuid.UUID) error {
	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return s.db.Delete(&comment).Error
}
