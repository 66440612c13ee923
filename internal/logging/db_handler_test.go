package logging

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/confessly/confessly-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newLogTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))
	return db
}

func TestDBHandlerOnlyAcceptsErrors(t *testing.T) {
	h := NewDBHandler(newLogTestDB(t))
	defer h.Stop()

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestDBHandlerPersistsRecordOnStop(t *testing.T) {
	db := newLogTestDB(t)
	h := NewDBHandler(db)

	record := slog.NewRecord(time.Now(), slog.LevelError, "vote write failed", 0)
	record.AddAttrs(
		slog.String("error", "disk full"),
		slog.String("trace_id", "abc-123"),
		slog.String("confession_id", "deadbeef"),
	)
	require.NoError(t, h.Handle(context.Background(), record))

	// Stop signals the flush loop; give it a moment to drain.
	h.Stop()
	time.Sleep(50 * time.Millisecond)

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "vote write failed", logs[0].Message)
	assert.Equal(t, "ERROR", logs[0].Level)
	assert.Equal(t, "disk full", logs[0].Error)
	assert.Equal(t, "abc-123", logs[0].TraceID)
	assert.Contains(t, string(logs[0].Extra), "confession_id")
}

func TestMultiHandlerFanOut(t *testing.T) {
	db := newLogTestDB(t)
	dbHandler := NewDBHandler(db)
	defer dbHandler.Stop()

	multi := NewMultiHandler(
		slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbHandler,
	)

	assert.True(t, multi.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, multi.Enabled(context.Background(), slog.LevelError))

	log := slog.New(multi)
	log.Info("routine message")
	log.Error("something broke")

	dbHandler.flush()

	var count int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "INFO goes to text only, ERROR reaches the DB")
}
