package visibility

import (
	"testing"

	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Block{}, &models.Post{}, &models.HiddenPost{}))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestExcludedAuthorIDs_UnionOfBothDirections(t *testing.T) {
	db := openDB(t)
	viewer := uuid.New()
	blockedByViewer := uuid.New()
	blockerOfViewer := uuid.New()
	both := uuid.New()

	require.NoError(t, db.Create(&models.Block{ID: uuid.New(), BlockerID: viewer, BlockedID: blockedByViewer}).Error)
	require.NoError(t, db.Create(&models.Block{ID: uuid.New(), BlockerID: blockerOfViewer, BlockedID: viewer}).Error)
	// Blocked each other; must appear once, not twice.
	require.NoError(t, db.Create(&models.Block{ID: uuid.New(), BlockerID: viewer, BlockedID: both}).Error)
	require.NoError(t, db.Create(&models.Block{ID: uuid.New(), BlockerID: both, BlockedID: viewer}).Error)

	ids, err := ExcludedAuthorIDs(db, viewer)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{blockedByViewer, blockerOfViewer, both}, ids)
}

func TestVisiblePosts_EmptySetsAreNoops(t *testing.T) {
	db := openDB(t)
	author := uuid.New()
	require.NoError(t, db.Create(&models.Post{ID: uuid.New(), UserID: author, Image: "a.jpg"}).Error)

	var count int64
	err := db.Model(&models.Post{}).Scopes(VisiblePosts(nil, nil)).Count(&count).Error
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestVisiblePosts_ExcludesAuthorsAndHiddenIDs(t *testing.T) {
	db := openDB(t)
	keptAuthor := uuid.New()
	excludedAuthor := uuid.New()
	kept := models.Post{ID: uuid.New(), UserID: keptAuthor, Image: "a.jpg"}
	hidden := models.Post{ID: uuid.New(), UserID: keptAuthor, Image: "b.jpg"}
	blocked := models.Post{ID: uuid.New(), UserID: excludedAuthor, Image: "c.jpg"}
	for _, p := range []*models.Post{&kept, &hidden, &blocked} {
		require.NoError(t, db.Create(p).Error)
	}

	var posts []models.Post
	err := db.Scopes(VisiblePosts([]uuid.UUID{excludedAuthor}, []uuid.UUID{hidden.ID})).
		Find(&posts).Error
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, kept.ID, posts[0].ID)
}
