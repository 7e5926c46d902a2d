package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/elifkaracan/vloggy-backend/internal/dto"
	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/elifkaracan/vloggy-backend/internal/visibility"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrNotVideoOwner = errors.New("only the video owner can do that")
)

// VideoService handles vlog entries. Media validation, transcoding and
// thumbnailing happen in the external pipeline; this service stores the
// media reference and whatever metadata the pipeline reports.
type VideoService struct {
	db         *gorm.DB
	engagement *EngagementService
}

func NewVideoService(db *gorm.DB, engagement *EngagementService) *VideoService {
	return &VideoService{db: db, engagement: engagement}
}

func (s *VideoService) CreateVideo(userID uuid.UUID, req *dto.CreateVideoRequest) (*models.Video, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.New("title is required")
	}
	if strings.TrimSpace(req.Media) == "" {
		return nil, errors.New("media reference is required")
	}

	video := models.Video{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Media:       req.Media,
	}
	if len(req.Meta) > 0 {
		video.Meta = datatypes.JSON(req.Meta)
	}
	if err := s.db.Create(&video).Error; err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return &video, nil
}

// Feed returns videos visible to the viewer, newest first. Only the block
// set applies; hide markers are a post-feed concept.
func (s *VideoService) Feed(viewerID uuid.UUID, limit, offset int) ([]dto.VideoItem, int64, error) {
	excluded, err := visibility.ExcludedAuthorIDs(s.db, viewerID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to derive block set: %w", err)
	}

	var total int64
	if err := s.db.Model(&models.Video{}).
		Scopes(visibility.VisiblePosts(excluded, nil)).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	var videos []models.Video
	err = s.db.Scopes(visibility.VisiblePosts(excluded, nil)).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&videos).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list videos: %w", err)
	}

	items := make([]dto.VideoItem, 0, len(videos))
	for _, v := range videos {
		item, err := s.buildItem(&v, viewerID)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, nil
}

func (s *VideoService) GetVideo(viewerID, videoID uuid.UUID) (*dto.VideoItem, error) {
	var video models.Video
	if err := s.db.Preload("User").First(&video, "id = ?", videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to load video: %w", err)
	}
	return s.buildItem(&video, viewerID)
}

func (s *VideoService) DeleteVideo(userID, videoID uuid.UUID) error {
	var video models.Video
	if err := s.db.First(&video, "id = ?", videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return fmt.Errorf("failed to load video: %w", err)
	}
	if video.UserID != userID {
		return ErrNotVideoOwner
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteSubjectRows(tx, models.SubjectVideo, []uuid.UUID{videoID}); err != nil {
			return err
		}
		return tx.Delete(&video).Error
	})
}

func (s *VideoService) buildItem(video *models.Video, viewerID uuid.UUID) (*dto.VideoItem, error) {
	liked, err := s.engagement.Liked(VideoSubject(video.ID), viewerID)
	if err != nil {
		return nil, err
	}
	return &dto.VideoItem{
		ID:            video.ID,
		UserID:        video.UserID,
		Username:      video.User.Username,
		Avatar:        video.User.Avatar,
		Title:         video.Title,
		Description:   video.Description,
		Media:         video.Media,
		Meta:          json.RawMessage(video.Meta),
		LikeCount:     video.LikeCount,
		CommentCount:  video.CommentCount,
		ReactionCount: video.ReactionCount,
		Liked:         liked,
		CreatedAt:     video.CreatedAt,
	}, nil
}
