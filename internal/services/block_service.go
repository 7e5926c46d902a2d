package services

import (
	"errors"
	"fmt"

	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSelfBlock      = errors.New("cannot block yourself")
	ErrAlreadyBlocked = errors.New("user already blocked")
	ErrBlockNotFound  = errors.New("block not found")
	ErrUserNotFound   = errors.New("user not found")
)

// BlockService owns the block registry: the edge itself, the blocker's
// cached counter and the follow cascade. All three change in one
// transaction so a visible block never coexists with a stale counter or a
// leftover follow edge.
type BlockService struct {
	db *gorm.DB
}

func NewBlockService(db *gorm.DB) *BlockService {
	return &BlockService{db: db}
}

func (s *BlockService) CreateBlock(blockerID, blockedID uuid.UUID) error {
	if blockerID == blockedID {
		return ErrSelfBlock
	}

	var target models.User
	if err := s.db.First(&target, "id = ?", blockedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Block{}).
			Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check existing block: %w", err)
		}
		if count > 0 {
			return ErrAlreadyBlocked
		}

		block := models.Block{
			ID:        uuid.New(),
			BlockerID: blockerID,
			BlockedID: blockedID,
		}
		if err := tx.Create(&block).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyBlocked
			}
			return fmt.Errorf("failed to create block: %w", err)
		}

		if err := tx.Model(&models.User{}).Where("id = ?", blockerID).
			Update("block_count", gorm.Expr("block_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to increment block count: %w", err)
		}

		// Unfollow on block, both directions.
		err := tx.Where(
			"(follower_id = ? AND following_id = ?) OR (follower_id = ? AND following_id = ?)",
			blockerID, blockedID, blockedID, blockerID,
		).Delete(&models.Follow{}).Error
		if err != nil {
			return fmt.Errorf("failed to remove follow edges: %w", err)
		}
		return nil
	})
}

func (s *BlockService) RemoveBlock(blockerID, blockedID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
			Delete(&models.Block{})
		if result.Error != nil {
			return fmt.Errorf("failed to remove block: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrBlockNotFound
		}

		// Clamped at zero; a counter drifting negative would otherwise stick.
		err := tx.Model(&models.User{}).Where("id = ?", blockerID).
			Update("block_count", gorm.Expr("CASE WHEN block_count > 0 THEN block_count - 1 ELSE 0 END")).Error
		if err != nil {
			return fmt.Errorf("failed to decrement block count: %w", err)
		}
		return nil
	})
}

// IsMutuallyVisible reports whether no block edge exists between a and b in
// either direction.
func (s *BlockService) IsMutuallyVisible(a, b uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check visibility: %w", err)
	}
	return count == 0, nil
}

// ListBlocked returns the accounts the user has blocked.
func (s *BlockService) ListBlocked(blockerID uuid.UUID) ([]models.Block, error) {
	var blocks []models.Block
	err := s.db.Where("blocker_id = ?", blockerID).
		Preload("Blocked").
		Order("created_at DESC").
		Find(&blocks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}
	return blocks, nil
}
