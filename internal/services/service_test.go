package services

import (
	"testing"

	"github.com/confessly/confessly-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Confession{},
		&models.Vote{},
		&models.Comment{},
		&models.Report{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Name:     "Test User",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedConfession(t *testing.T, db *gorm.DB, title string) *models.Confession {
	t.Helper()

	confession := models.Confession{
		ID:    uuid.New(),
		Title: title,
		Body:  "something I never told anyone",
		Tag:   models.TagOther,
	}
	require.NoError(t, db.Create(&confession).Error)
	return &confession
}
