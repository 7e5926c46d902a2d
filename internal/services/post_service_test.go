package services

import (
	"strings"
	"testing"

	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPostService(db *gorm.DB) *PostService {
	return NewPostService(db, NewEngagementService(db, NewNotificationService(db)))
}

func TestCreatePost_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	alice := createUser(t, db, "alice")

	_, err := svc.CreatePost(alice.ID, "", "caption")
	assert.Error(t, err)

	_, err = svc.CreatePost(alice.ID, "uploads/a.jpg", strings.Repeat("x", maxCaptionLength+1))
	assert.Error(t, err)

	post, err := svc.CreatePost(alice.ID, "uploads/a.jpg", "hello")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, post.UserID)
}

func TestFeed_ExcludesBlockedAuthorsBothDirections(t *testing.T) {
	db := newTestDB(t)
	posts := newPostService(db)
	blocks := NewBlockService(db)
	viewer := createUser(t, db, "viewer")
	blockedByViewer := createUser(t, db, "blockedbyviewer")
	blockerOfViewer := createUser(t, db, "blockerofviewer")
	neutral := createUser(t, db, "neutral")

	createPost(t, db, blockedByViewer)
	createPost(t, db, blockerOfViewer)
	neutralPost := createPost(t, db, neutral)

	require.NoError(t, blocks.CreateBlock(viewer.ID, blockedByViewer.ID))
	require.NoError(t, blocks.CreateBlock(blockerOfViewer.ID, viewer.ID))

	items, total, err := posts.Feed(viewer.ID, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, neutralPost.ID, items[0].ID)

	// The neutral author still sees everything.
	_, total, err = posts.Feed(neutral.ID, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestFeed_UnblockRestoresVisibility(t *testing.T) {
	db := newTestDB(t)
	posts := newPostService(db)
	blocks := NewBlockService(db)
	viewer := createUser(t, db, "viewer")
	author := createUser(t, db, "author")
	createPost(t, db, author)

	require.NoError(t, blocks.CreateBlock(viewer.ID, author.ID))

	_, total, err := posts.Feed(viewer.ID, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	// Nothing is materialized at block time, so removal takes effect on
	// the very next read.
	require.NoError(t, blocks.RemoveBlock(viewer.ID, author.ID))

	_, total, err = posts.Feed(viewer.ID, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestHidePost_HidesForHiderOnly(t *testing.T) {
	db := newTestDB(t)
	posts := newPostService(db)
	viewer := createUser(t, db, "viewer")
	other := createUser(t, db, "other")
	author := createUser(t, db, "author")
	post := createPost(t, db, author)

	require.NoError(t, posts.HidePost(viewer.ID, post.ID))

	_, total, err := posts.Feed(viewer.ID, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	_, total, err = posts.Feed(other.ID, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	err = posts.HidePost(viewer.ID, post.ID)
	assert.ErrorIs(t, err, ErrAlreadyHidden)

	require.NoError(t, posts.UnhidePost(viewer.ID, post.ID))
	_, total, err = posts.Feed(viewer.ID, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	err = posts.UnhidePost(viewer.ID, post.ID)
	assert.ErrorIs(t, err, ErrNotHidden)
}

func TestHidePost_OwnerHidingOwnPost(t *testing.T) {
	db := newTestDB(t)
	posts := newPostService(db)
	author := createUser(t, db, "author")
	other := createUser(t, db, "other")
	post := createPost(t, db, author)

	require.NoError(t, posts.HidePost(author.ID, post.ID))

	// Hidden from the hider's own feed but still public to everyone else.
	_, total, err := posts.Feed(author.ID, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	_, total, err = posts.Feed(other.ID, 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestDeletePost_OwnerOnlyAndCascades(t *testing.T) {
	db := newTestDB(t)
	posts := newPostService(db)
	engagement := NewEngagementService(db, NewNotificationService(db))
	comments := NewCommentService(db, engagement)
	author := createUser(t, db, "author")
	alice := createUser(t, db, "alice")
	post := createPost(t, db, author)
	subject := PostSubject(post.ID)

	_, err := engagement.SetReaction(subject, alice.ID, models.KindLove)
	require.NoError(t, err)
	_, err = engagement.ToggleLike(subject, alice.ID)
	require.NoError(t, err)
	_, err = comments.AddComment(subject, alice.ID, "nice shot")
	require.NoError(t, err)
	require.NoError(t, posts.HidePost(alice.ID, post.ID))

	err = posts.DeletePost(alice.ID, post.ID)
	assert.ErrorIs(t, err, ErrNotPostOwner)

	require.NoError(t, posts.DeletePost(author.ID, post.ID))

	err = posts.DeletePost(author.ID, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	for model, name := range map[interface{}]string{
		&models.Reaction{}:   "reactions",
		&models.Like{}:       "likes",
		&models.Comment{}:    "comments",
		&models.HiddenPost{}: "hidden markers",
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "leftover %s after delete", name)
	}
}

func TestDeletePost_FailedChildDeleteRollsBack(t *testing.T) {
	db := newTestDB(t)
	posts := newPostService(db)
	author := createUser(t, db, "author")
	post := createPost(t, db, author)

	require.NoError(t, db.Migrator().DropTable(&models.Comment{}))

	err := posts.DeletePost(author.ID, post.ID)
	require.Error(t, err)

	// The post survives: no partial cascade commits.
	var count int64
	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetPost_ViewerContext(t *testing.T) {
	db := newTestDB(t)
	engagement := NewEngagementService(db, NewNotificationService(db))
	posts := NewPostService(db, engagement)
	author := createUser(t, db, "author")
	alice := createUser(t, db, "alice")
	post := createPost(t, db, author)
	subject := PostSubject(post.ID)

	_, err := engagement.ToggleLike(subject, alice.ID)
	require.NoError(t, err)
	_, err = engagement.SetReaction(subject, alice.ID, models.KindHaha)
	require.NoError(t, err)

	item, err := posts.GetPost(alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, item.Liked)
	require.Len(t, item.TopReactions, 1)
	assert.Equal(t, models.KindHaha, item.TopReactions[0].Kind)

	// Same post through the author's eyes: not liked by them.
	item, err = posts.GetPost(author.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, item.Liked)

	_, err = posts.GetPost(alice.ID, uuid.New())
	assert.ErrorIs(t, err, ErrPostNotFound)
}
