package logging

import (
	"testing"
	"time"

	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestPurgeExpiredLogs(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))
	t.Cleanup(func() { _ = sqlDB.Close() })

	retention := 720 * time.Hour
	expired := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: time.Now().Add(-retention - time.Hour),
		Level:     "ERROR",
		Message:   "old failure",
	}
	fresh := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: time.Now().Add(-time.Hour),
		Level:     "ERROR",
		Message:   "recent failure",
	}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&fresh).Error)

	deleted, err := purgeExpiredLogs(db, retention)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var remaining []models.SystemLog
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}
