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

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrNotPostOwner  = errors.New("only the post owner can do that")
	ErrAlreadyHidden = errors.New("post is already hidden")
	ErrNotHidden     = errors.New("post is not hidden")
)

const maxCaptionLength = 1000

// PostService handles post CRUD, the viewer-scoped feed and per-viewer hide
// markers. The feed applies the visibility filter at read time; nothing is
// materialized at write time.
type PostService struct {
	db         *gorm.DB
	engagement *EngagementService
}

func NewPostService(db *gorm.DB, engagement *EngagementService) *PostService {
	return &PostService{db: db, engagement: engagement}
}

func (s *PostService) CreatePost(userID uuid.UUID, image, content string) (*models.Post, error) {
	if strings.TrimSpace(image) == "" {
		return nil, errors.New("image reference is required")
	}
	if len(content) > maxCaptionLength {
		return nil, fmt.Errorf("caption must be under %d characters", maxCaptionLength)
	}

	post := models.Post{
		ID:      uuid.New(),
		UserID:  userID,
		Image:   image,
		Content: content,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

// Feed returns the posts visible to the viewer, newest first. Excluded:
// posts by accounts in the viewer's block set (either direction) and posts
// the viewer has hidden. A viewer's own hidden posts stay hidden only from
// that same viewer.
func (s *PostService) Feed(viewerID uuid.UUID, limit, offset int) ([]dto.PostItem, int64, error) {
	excluded, err := visibility.ExcludedAuthorIDs(s.db, viewerID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to derive block set: %w", err)
	}
	hidden, err := visibility.HiddenPostIDs(s.db, viewerID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to derive hidden set: %w", err)
	}

	var total int64
	if err := s.db.Model(&models.Post{}).
		Scopes(visibility.VisiblePosts(excluded, hidden)).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	var posts []models.Post
	err = s.db.Scopes(visibility.VisiblePosts(excluded, hidden)).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	items := make([]dto.PostItem, 0, len(posts))
	for _, p := range posts {
		item, err := s.buildItem(&p, viewerID)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, nil
}

func (s *PostService) GetPost(viewerID, postID uuid.UUID) (*dto.PostItem, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return s.buildItem(&post, viewerID)
}

func (s *PostService) DeletePost(userID, postID uuid.UUID) error {
	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to load post: %w", err)
	}
	if post.UserID != userID {
		return ErrNotPostOwner
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteSubjectRows(tx, models.SubjectPost, []uuid.UUID{postID}); err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.HiddenPost{}).Error; err != nil {
			return fmt.Errorf("failed to delete hidden markers: %w", err)
		}
		return tx.Delete(&post).Error
	})
}

// HidePost marks the post hidden for this viewer only.
func (s *PostService) HidePost(userID, postID uuid.UUID) error {
	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to load post: %w", err)
	}

	var count int64
	if err := s.db.Model(&models.HiddenPost{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check hidden marker: %w", err)
	}
	if count > 0 {
		return ErrAlreadyHidden
	}

	marker := models.HiddenPost{ID: uuid.New(), UserID: userID, PostID: postID}
	if err := s.db.Create(&marker).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyHidden
		}
		return fmt.Errorf("failed to hide post: %w", err)
	}
	return nil
}

func (s *PostService) UnhidePost(userID, postID uuid.UUID) error {
	result := s.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.HiddenPost{})
	if result.Error != nil {
		return fmt.Errorf("failed to unhide post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotHidden
	}
	return nil
}

func (s *PostService) buildItem(post *models.Post, viewerID uuid.UUID) (*dto.PostItem, error) {
	subject := PostSubject(post.ID)
	liked, err := s.engagement.Liked(subject, viewerID)
	if err != nil {
		return nil, err
	}
	top, err := s.engagement.TopReactions(subject, 3)
	if err != nil {
		return nil, err
	}
	return &dto.PostItem{
		ID:            post.ID,
		UserID:        post.UserID,
		Username:      post.User.Username,
		Avatar:        post.User.Avatar,
		Image:         post.Image,
		Content:       post.Content,
		LikeCount:     post.LikeCount,
		CommentCount:  post.CommentCount,
		ReactionCount: post.ReactionCount,
		Liked:         liked,
		TopReactions:  top,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}, nil
}
