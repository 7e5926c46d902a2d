package services

import (
	"errors"
	"fmt"

	"github.com/elifkaracan/vloggy-backend/internal/dto"
	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService derives notification records from follow and reaction
// creation. The writing services call NotifyFollow/NotifyReaction directly
// inside their own transactions; there is no implicit event dispatch, so a
// mutation and its fan-out commit or roll back together.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// NotifyFollow records a follow notification for recipient unless one from
// this actor already exists. Follow rows carry a NULL reaction id, which the
// dedup index does not constrain, so the existence check is the guard here.
func (s *NotificationService) NotifyFollow(tx *gorm.DB, recipientID, actorID uuid.UUID) error {
	var count int64
	err := tx.Model(&models.Notification{}).
		Where("user_id = ? AND actor_id = ? AND kind = ?", recipientID, actorID, models.NotificationFollow).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check follow notification: %w", err)
	}
	if count > 0 {
		return nil
	}

	n := models.Notification{
		ID:      uuid.New(),
		UserID:  recipientID,
		ActorID: actorID,
		Kind:    models.NotificationFollow,
	}
	if err := tx.Create(&n).Error; err != nil {
		return fmt.Errorf("failed to create follow notification: %w", err)
	}
	return nil
}

// NotifyReaction records a reaction notification keyed on the reaction row.
// A lost race against the dedup index means the notification already exists
// and is not an error. Self-reactions are suppressed by the caller.
func (s *NotificationService) NotifyReaction(tx *gorm.DB, recipientID, actorID, reactionID uuid.UUID) error {
	var count int64
	err := tx.Model(&models.Notification{}).
		Where("user_id = ? AND actor_id = ? AND kind = ? AND reaction_id = ?",
			recipientID, actorID, models.NotificationReaction, reactionID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check reaction notification: %w", err)
	}
	if count > 0 {
		return nil
	}

	n := models.Notification{
		ID:         uuid.New(),
		UserID:     recipientID,
		ActorID:    actorID,
		Kind:       models.NotificationReaction,
		ReactionID: &reactionID,
	}
	if err := tx.Create(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("failed to create reaction notification: %w", err)
	}
	return nil
}

// List returns all notifications for recipient, newest first, with total and
// unread counts computed at query time.
func (s *NotificationService) List(recipientID uuid.UUID) (*dto.NotificationFeed, error) {
	var notifications []models.Notification
	err := s.db.Where("user_id = ?", recipientID).
		Preload("Actor").
		Preload("Reaction").
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	feed := &dto.NotificationFeed{
		TotalCount:    int64(len(notifications)),
		Notifications: make([]dto.NotificationItem, 0, len(notifications)),
	}
	for _, n := range notifications {
		if !n.IsRead {
			feed.UnreadCount++
		}
		item := dto.NotificationItem{
			ID:   n.ID,
			Kind: n.Kind,
			Actor: dto.UserSummary{
				ID:       n.Actor.ID,
				Username: n.Actor.Username,
				Avatar:   n.Actor.Avatar,
			},
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if n.Reaction != nil {
			kind := n.Reaction.Kind
			subjectID := n.Reaction.SubjectID
			item.ReactionKind = &kind
			item.SubjectType = n.Reaction.SubjectType
			item.SubjectID = &subjectID
		}
		feed.Notifications = append(feed.Notifications, item)
	}
	return feed, nil
}

// MarkRead flips is_read on one of the recipient's notifications.
func (s *NotificationService) MarkRead(recipientID, notificationID uuid.UUID) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, recipientID).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// ReactedAudience returns the distinct users who reacted to any of the
// given user's posts or videos.
func (s *NotificationService) ReactedAudience(userID uuid.UUID) ([]dto.UserSummary, error) {
	var users []models.User
	err := s.db.
		Distinct("users.id", "users.username", "users.avatar").
		Model(&models.User{}).
		Joins("JOIN reactions ON reactions.user_id = users.id").
		Where(`(reactions.subject_type = ? AND reactions.subject_id IN (SELECT id FROM posts WHERE user_id = ?))
			OR (reactions.subject_type = ? AND reactions.subject_id IN (SELECT id FROM videos WHERE user_id = ?))`,
			models.SubjectPost, userID, models.SubjectVideo, userID).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reacting users: %w", err)
	}
	return toSummaries(users), nil
}

// FollowerAudience returns the users currently following the given user.
func (s *NotificationService) FollowerAudience(userID uuid.UUID) ([]dto.UserSummary, error) {
	var users []models.User
	err := s.db.Model(&models.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return toSummaries(users), nil
}

func toSummaries(users []models.User) []dto.UserSummary {
	out := make([]dto.UserSummary, len(users))
	for i, u := range users {
		out[i] = dto.UserSummary{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
	}
	return out
}
