package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elifkaracan/vloggy-backend/internal/dto"
	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/elifkaracan/vloggy-backend/internal/visibility"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

const maxCommentLength = 1000

// CommentService handles comments on posts and videos. Listings exclude
// comment authors in the viewer's block set, recomputed per read.
type CommentService struct {
	db         *gorm.DB
	engagement *EngagementService
}

func NewCommentService(db *gorm.DB, engagement *EngagementService) *CommentService {
	return &CommentService{db: db, engagement: engagement}
}

func (s *CommentService) AddComment(subject Subject, userID uuid.UUID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("comment content is required")
	}
	if len(content) > maxCommentLength {
		return nil, fmt.Errorf("comment must be under %d characters", maxCommentLength)
	}
	if _, err := s.engagement.subjectOwner(s.db, subject); err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:          uuid.New(),
		SubjectType: subject.Type,
		SubjectID:   subject.ID,
		UserID:      userID,
		Content:     content,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		return s.engagement.bumpCounter(tx, subject, "comment_count", 1)
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns the subject's comments visible to the viewer,
// newest first.
func (s *CommentService) ListComments(viewerID uuid.UUID, subject Subject) ([]dto.CommentItem, error) {
	if _, err := s.engagement.subjectOwner(s.db, subject); err != nil {
		return nil, err
	}

	excluded, err := visibility.ExcludedAuthorIDs(s.db, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive block set: %w", err)
	}

	var comments []models.Comment
	err = s.db.Where("subject_type = ? AND subject_id = ?", subject.Type, subject.ID).
		Scopes(visibility.VisibleComments(excluded)).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	items := make([]dto.CommentItem, len(comments))
	for i, c := range comments {
		items[i] = dto.CommentItem{
			ID:        c.ID,
			UserID:    c.UserID,
			Username:  c.User.Username,
			Avatar:    c.User.Avatar,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
	}
	return items, nil
}

func (s *CommentService) DeleteComment(userID, commentID uuid.UUID) error {
	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("failed to load comment: %w", err)
	}
	if comment.UserID != userID {
		return errors.New("only the comment author can delete it")
	}

	subject := Subject{Type: comment.SubjectType, ID: comment.SubjectID}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&comment).Error; err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}
		return s.engagement.bumpCounter(tx, subject, "comment_count", -1)
	})
}
