package services

import (
	"testing"

	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Counts(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileService(db)
	notifications := NewNotificationService(db)
	engagement := NewEngagementService(db, notifications)
	follows := NewFollowService(db, notifications)
	author := createUser(t, db, "author")
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	post := createPost(t, db, author)
	createPost(t, db, author)
	video := createVideo(t, db, author)

	require.NoError(t, follows.CreateFollow(alice.ID, author.ID))
	require.NoError(t, follows.CreateFollow(bob.ID, author.ID))
	require.NoError(t, follows.CreateFollow(author.ID, alice.ID))

	_, err := engagement.SetReaction(PostSubject(post.ID), alice.ID, models.KindLove)
	require.NoError(t, err)
	_, err = engagement.SetReaction(VideoSubject(video.ID), bob.ID, models.KindWow)
	require.NoError(t, err)

	profile, err := profiles.Profile(author.ID)
	require.NoError(t, err)
	assert.Equal(t, "author", profile.Username)
	assert.EqualValues(t, 2, profile.PostCount)
	assert.EqualValues(t, 2, profile.FollowerCount)
	assert.EqualValues(t, 1, profile.FollowingCount)
	assert.EqualValues(t, 2, profile.TotalReactions)

	_, err = profiles.Profile(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollowers_FiltersViewerBlockSet(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileService(db)
	notifications := NewNotificationService(db)
	follows := NewFollowService(db, notifications)
	blocks := NewBlockService(db)
	author := createUser(t, db, "author")
	viewer := createUser(t, db, "viewer")
	alice := createUser(t, db, "alice")
	blocked := createUser(t, db, "blockeduser")

	require.NoError(t, follows.CreateFollow(alice.ID, author.ID))
	require.NoError(t, follows.CreateFollow(blocked.ID, author.ID))
	require.NoError(t, blocks.CreateBlock(viewer.ID, blocked.ID))

	followers, err := profiles.Followers(viewer.ID, author.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "alice", followers[0].Username)

	// The author, who blocked nobody, sees the full listing.
	followers, err = profiles.Followers(author.ID, author.ID)
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	_, err = profiles.Followers(viewer.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollowing_FiltersViewerBlockSet(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileService(db)
	notifications := NewNotificationService(db)
	follows := NewFollowService(db, notifications)
	blocks := NewBlockService(db)
	author := createUser(t, db, "author")
	viewer := createUser(t, db, "viewer")
	alice := createUser(t, db, "alice")
	blocker := createUser(t, db, "blocker")

	require.NoError(t, follows.CreateFollow(author.ID, alice.ID))
	require.NoError(t, follows.CreateFollow(author.ID, blocker.ID))
	// Being blocked removes the blocker from the viewer's listings too.
	require.NoError(t, blocks.CreateBlock(blocker.ID, viewer.ID))

	following, err := profiles.Following(viewer.ID, author.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "alice", following[0].Username)
}
