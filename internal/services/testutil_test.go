package services

import (
	"fmt"
	"testing"

	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the full
// schema. TranslateError is on so duplicate-key violations surface as
// gorm.ErrDuplicatedKey, same as the production Postgres connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A :memory: database exists per connection; keep the pool at one.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Block{},
		&models.Follow{},
		&models.Post{},
		&models.Video{},
		&models.Comment{},
		&models.HiddenPost{},
		&models.Reaction{},
		&models.Like{},
		&models.Notification{},
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.New(),
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createPost(t *testing.T, db *gorm.DB, author *models.User) *models.Post {
	t.Helper()
	post := models.Post{
		ID:      uuid.New(),
		UserID:  author.ID,
		Image:   "uploads/sample.jpg",
		Content: "caption",
	}
	require.NoError(t, db.Create(&post).Error)
	return &post
}

func createVideo(t *testing.T, db *gorm.DB, author *models.User) *models.Video {
	t.Helper()
	video := models.Video{
		ID:     uuid.New(),
		UserID: author.ID,
		Title:  "weekly vlog",
		Media:  "uploads/sample.mp4",
	}
	require.NoError(t, db.Create(&video).Error)
	return &video
}
