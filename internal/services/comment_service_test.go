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

func newCommentService(db *gorm.DB) *CommentService {
	return NewCommentService(db, NewEngagementService(db, NewNotificationService(db)))
}

func TestAddComment_ValidationAndCounter(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	author := createUser(t, db, "author")
	alice := createUser(t, db, "alice")
	post := createPost(t, db, author)
	subject := PostSubject(post.ID)

	_, err := svc.AddComment(subject, alice.ID, "   ")
	assert.Error(t, err)

	_, err = svc.AddComment(subject, alice.ID, strings.Repeat("x", maxCommentLength+1))
	assert.Error(t, err)

	_, err = svc.AddComment(PostSubject(uuid.New()), alice.ID, "hello")
	assert.ErrorIs(t, err, ErrContentNotFound)

	comment, err := svc.AddComment(subject, alice.ID, "great view")
	require.NoError(t, err)
	assert.Equal(t, "great view", comment.Content)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, "id = ?", post.ID).Error)
	assert.Equal(t, 1, reloaded.CommentCount)
}

func TestListComments_FiltersBlockedAuthors(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	blocks := NewBlockService(db)
	author := createUser(t, db, "author")
	viewer := createUser(t, db, "viewer")
	blocked := createUser(t, db, "blocked")
	video := createVideo(t, db, author)
	subject := VideoSubject(video.ID)

	_, err := svc.AddComment(subject, author.ID, "first")
	require.NoError(t, err)
	_, err = svc.AddComment(subject, blocked.ID, "second")
	require.NoError(t, err)

	require.NoError(t, blocks.CreateBlock(viewer.ID, blocked.ID))

	items, err := svc.ListComments(viewer.ID, subject)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "author", items[0].Username)

	// The comment is filtered per viewer, not deleted: the author still
	// sees both.
	items, err = svc.ListComments(author.ID, subject)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestDeleteComment(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	author := createUser(t, db, "author")
	alice := createUser(t, db, "alice")
	post := createPost(t, db, author)
	subject := PostSubject(post.ID)

	comment, err := svc.AddComment(subject, alice.ID, "hello")
	require.NoError(t, err)

	err = svc.DeleteComment(author.ID, comment.ID)
	assert.Error(t, err)

	require.NoError(t, svc.DeleteComment(alice.ID, comment.ID))

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, "id = ?", post.ID).Error)
	assert.Equal(t, 0, reloaded.CommentCount)

	err = svc.DeleteComment(alice.ID, comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
