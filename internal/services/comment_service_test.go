package services

import (
	"strings"
	"testing"

	"github.com/confessly/confessly-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db, NewContentFilter())
	user := seedUser(t, db, "commenter@example.com")
	confession := seedConfession(t, db, "talk to me")

	comment, err := svc.Add(user.ID, confession.ID, "  you are not alone  ")
	require.NoError(t, err)

	assert.Equal(t, "you are not alone", comment.Content)
	assert.Equal(t, confession.ID, comment.ConfessionID)
	assert.Equal(t, "Test User", comment.Author.Name, "author is preloaded for the response")
}

func TestAddCommentValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db, NewContentFilter())
	user := seedUser(t, db, "commenter@example.com")
	confession := seedConfession(t, db, "quiet thread")

	_, err := svc.Add(user.ID, confession.ID, "   ")
	assert.Error(t, err)

	_, err = svc.Add(user.ID, confession.ID, strings.Repeat("a", 501))
	assert.Error(t, err)

	_, err = svc.Add(user.ID, confession.ID, strings.Repeat("a", 500))
	assert.NoError(t, err)
}

func TestAddCommentConfessionNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db, NewContentFilter())
	user := seedUser(t, db, "commenter@example.com")

	_, err := svc.Add(user.ID, uuid.New(), "hello?")
	assert.ErrorIs(t, err, ErrConfessionNotFound)
}

func TestDeleteComment(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db, NewContentFilter())
	user := seedUser(t, db, "commenter@example.com")
	confession := seedConfession(t, db, "moderated")

	comment, err := svc.Add(user.ID, confession.ID, "rude remark")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(comment.ID))

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Parent confession untouched.
	var stored models.Confession
	require.NoError(t, db.First(&stored, "id = ?", confession.ID).Error)
	assert.Equal(t, 0, stored.TotalVotes)
}

func TestDeleteCommentNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db, NewContentFilter())

	assert.ErrorIs(t, svc.Delete(uuid.New()), ErrCommentNotFound)
}
