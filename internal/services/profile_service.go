package services

import (
	"errors"
	"fmt"

	"github.com/elifkaracan/vloggy-backend/internal/dto"
	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/elifkaracan/vloggy-backend/internal/visibility"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileService builds profile views and follower/following listings,
// filtered through the viewer's block set.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) Profile(userID uuid.UUID) (*dto.ProfileResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	var postCount, followerCount, followingCount, totalReactions int64
	if err := s.db.Model(&models.Post{}).Where("user_id = ?", userID).Count(&postCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}
	if err := s.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&followerCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}
	if err := s.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&followingCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count following: %w", err)
	}
	// Reactions received across the user's posts and videos.
	err := s.db.Model(&models.Reaction{}).
		Where(`(subject_type = ? AND subject_id IN (SELECT id FROM posts WHERE user_id = ?))
			OR (subject_type = ? AND subject_id IN (SELECT id FROM videos WHERE user_id = ?))`,
			models.SubjectPost, userID, models.SubjectVideo, userID).
		Count(&totalReactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions: %w", err)
	}

	return &dto.ProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Bio:            user.Bio,
		Avatar:         user.Avatar,
		PostCount:      postCount,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		TotalReactions: totalReactions,
		CreatedAt:      user.CreatedAt,
	}, nil
}

// Followers lists the profiles following userID that the viewer may see.
func (s *ProfileService) Followers(viewerID, userID uuid.UUID) ([]dto.UserSummary, error) {
	return s.edgeProfiles(viewerID, userID, "following_id", "follower_id")
}

// Following lists the profiles userID follows that the viewer may see.
func (s *ProfileService) Following(viewerID, userID uuid.UUID) ([]dto.UserSummary, error) {
	return s.edgeProfiles(viewerID, userID, "follower_id", "following_id")
}

func (s *ProfileService) edgeProfiles(viewerID, userID uuid.UUID, whereCol, selectCol string) ([]dto.UserSummary, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if count == 0 {
		return nil, ErrUserNotFound
	}

	var ids []uuid.UUID
	if err := s.db.Model(&models.Follow{}).
		Where(whereCol+" = ?", userID).
		Pluck(selectCol, &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list follow edges: %w", err)
	}
	if len(ids) == 0 {
		return []dto.UserSummary{}, nil
	}

	excluded, err := visibility.ExcludedAuthorIDs(s.db, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive block set: %w", err)
	}

	var users []models.User
	err = s.db.Where("id IN ?", ids).
		Scopes(visibility.VisibleProfiles(excluded)).
		Order("username ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return toSummaries(users), nil
}
