package services

import (
	"testing"

	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBlock_SelfBlockRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlockService(db)
	user := createUser(t, db, "alice")

	err := svc.CreateBlock(user.ID, user.ID)
	assert.ErrorIs(t, err, ErrSelfBlock)
}

func TestCreateBlock_UnknownTarget(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlockService(db)
	user := createUser(t, db, "alice")

	err := svc.CreateBlock(user.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateBlock_IncrementsCounterAndIsIdempotentError(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlockService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.CreateBlock(alice.ID, bob.ID))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", alice.ID).Error)
	assert.Equal(t, 1, reloaded.BlockCount)

	err := svc.CreateBlock(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyBlocked)

	// The failed second attempt must not bump the counter.
	require.NoError(t, db.First(&reloaded, "id = ?", alice.ID).Error)
	assert.Equal(t, 1, reloaded.BlockCount)
}

func TestCreateBlock_RemovesFollowEdgesBothDirections(t *testing.T) {
	db := newTestDB(t)
	blocks := NewBlockService(db)
	follows := NewFollowService(db, NewNotificationService(db))
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, follows.CreateFollow(alice.ID, bob.ID))
	require.NoError(t, follows.CreateFollow(bob.ID, alice.ID))

	require.NoError(t, blocks.CreateBlock(alice.ID, bob.ID))

	following, err := follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	followedBack, err := follows.IsFollowing(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, followedBack)
}

func TestRemoveBlock_DecrementsCounter(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlockService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.CreateBlock(alice.ID, bob.ID))
	require.NoError(t, svc.RemoveBlock(alice.ID, bob.ID))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", alice.ID).Error)
	assert.Equal(t, 0, reloaded.BlockCount)

	err := svc.RemoveBlock(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestRemoveBlock_CounterNeverGoesNegative(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlockService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	// Seed an already-zero counter alongside a live block row to simulate
	// drift; removal must clamp at zero rather than wrapping negative.
	require.NoError(t, svc.CreateBlock(alice.ID, bob.ID))
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", alice.ID).
		Update("block_count", 0).Error)

	require.NoError(t, svc.RemoveBlock(alice.ID, bob.ID))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", alice.ID).Error)
	assert.Equal(t, 0, reloaded.BlockCount)
}

func TestIsMutuallyVisible(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlockService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	require.NoError(t, svc.CreateBlock(alice.ID, bob.ID))

	visible, err := svc.IsMutuallyVisible(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, visible)

	// The edge hides both directions regardless of argument order.
	visible, err = svc.IsMutuallyVisible(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, visible)

	visible, err = svc.IsMutuallyVisible(alice.ID, carol.ID)
	require.NoError(t, err)
	assert.True(t, visible)
}

func TestListBlocked(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlockService(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	require.NoError(t, svc.CreateBlock(alice.ID, bob.ID))
	require.NoError(t, svc.CreateBlock(alice.ID, carol.ID))

	blocks, err := svc.ListBlocked(alice.ID)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	usernames := []string{blocks[0].Blocked.Username, blocks[1].Blocked.Username}
	assert.ElementsMatch(t, []string{"bob", "carol"}, usernames)

	// Bob blocked nobody; his list stays empty even though he is blocked.
	blocks, err = svc.ListBlocked(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}
