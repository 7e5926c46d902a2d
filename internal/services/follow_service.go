package services

import (
	"errors"
	"fmt"

	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
)

// FollowService owns the follow registry. Creating an edge fans out a
// follow notification in the same transaction.
type FollowService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewFollowService(db *gorm.DB, notifications *NotificationService) *FollowService {
	return &FollowService{db: db, notifications: notifications}
}

func (s *FollowService) CreateFollow(followerID, followingID uuid.UUID) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	var target models.User
	if err := s.db.First(&target, "id = ?", followingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Follow{}).
			Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check existing follow: %w", err)
		}
		if count > 0 {
			return ErrAlreadyFollowing
		}

		follow := models.Follow{
			ID:          uuid.New(),
			FollowerID:  followerID,
			FollowingID: followingID,
		}
		if err := tx.Create(&follow).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyFollowing
			}
			return fmt.Errorf("failed to create follow: %w", err)
		}

		return s.notifications.NotifyFollow(tx, followingID, followerID)
	})
}

func (s *FollowService) RemoveFollow(followerID, followingID uuid.UUID) error {
	result := s.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove follow: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFollowing
	}
	return nil
}

// ListFollowers returns the account ids following the given user. Callers
// apply the visibility filter before display.
func (s *FollowService) ListFollowers(userID uuid.UUID) ([]uuid.UUID, error) {
	return s.edgeIDs("following_id", "follower_id", userID)
}

// ListFollowing returns the account ids the given user follows.
func (s *FollowService) ListFollowing(userID uuid.UUID) ([]uuid.UUID, error) {
	return s.edgeIDs("follower_id", "following_id", userID)
}

func (s *FollowService) edgeIDs(whereCol, selectCol string, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.Model(&models.Follow{}).
		Where(whereCol+" = ?", userID).
		Pluck(selectCol, &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list follow edges: %w", err)
	}
	return ids, nil
}

// IsFollowing reports whether the edge follower -> following exists.
func (s *FollowService) IsFollowing(followerID, followingID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return count > 0, nil
}
