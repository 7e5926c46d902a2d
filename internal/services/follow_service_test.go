package services

import (
	"testing"

	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFollow_SelfFollowRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db, NewNotificationService(db))
	alice := createUser(t, db, "alice")

	err := svc.CreateFollow(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestCreateFollow_UnknownTarget(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db, NewNotificationService(db))
	alice := createUser(t, db, "alice")

	err := svc.CreateFollow(alice.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateFollow_DuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db, NewNotificationService(db))
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.CreateFollow(alice.ID, bob.ID))
	err := svc.CreateFollow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)
}

func TestCreateFollow_NotifiesTarget(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db, NewNotificationService(db))
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.CreateFollow(alice.ID, bob.ID))

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", bob.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationFollow, notifications[0].Kind)
	assert.Equal(t, alice.ID, notifications[0].ActorID)
	assert.Nil(t, notifications[0].ReactionID)
}

func TestRemoveFollow(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db, NewNotificationService(db))
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.CreateFollow(alice.ID, bob.ID))
	require.NoError(t, svc.RemoveFollow(alice.ID, bob.ID))

	following, err := svc.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	err = svc.RemoveFollow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFollowing)
}

func TestFollowListings(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db, NewNotificationService(db))
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	require.NoError(t, svc.CreateFollow(alice.ID, bob.ID))
	require.NoError(t, svc.CreateFollow(carol.ID, bob.ID))
	require.NoError(t, svc.CreateFollow(bob.ID, alice.ID))

	followers, err := svc.ListFollowers(bob.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{alice.ID, carol.ID}, followers)

	following, err := svc.ListFollowing(bob.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{alice.ID}, following)

	// Follower and following sets are independent directions.
	followers, err = svc.ListFollowers(carol.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestRefollowAfterUnfollow_NoDuplicateNotification(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db, NewNotificationService(db))
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.CreateFollow(alice.ID, bob.ID))
	require.NoError(t, svc.RemoveFollow(alice.ID, bob.ID))
	require.NoError(t, svc.CreateFollow(alice.ID, bob.ID))

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND actor_id = ? AND kind = ?", bob.ID, alice.ID, models.NotificationFollow).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
