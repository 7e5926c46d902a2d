package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/elifkaracan/vloggy-backend/internal/dto"
	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrInvalidReaction = errors.New("invalid reaction kind")
)

// Subject identifies a reactable content item: a post or a video.
type Subject struct {
	Type string
	ID   uuid.UUID
}

func PostSubject(id uuid.UUID) Subject  { return Subject{Type: models.SubjectPost, ID: id} }
func VideoSubject(id uuid.UUID) Subject { return Subject{Type: models.SubjectVideo, ID: id} }

// EngagementService runs the per-(subject, user) reaction state machine and
// the independent like toggle. Reactions and likes deliberately coexist as
// two parallel engagement primitives on the same content item.
//
// Only reaction creation fans out a notification; updates and removals stay
// silent, and so does the like toggle.
type EngagementService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewEngagementService(db *gorm.DB, notifications *NotificationService) *EngagementService {
	return &EngagementService{db: db, notifications: notifications}
}

// SetReaction applies one transition:
//
//	no reaction + kind        -> row created, action "added"
//	reaction(k) + kind != k   -> kind updated in place, action "updated"
//	reaction(k) + kind == k   -> row deleted, action "removed"
//	any state   + "remove"    -> row deleted if present, action "removed"/"none"
func (s *EngagementService) SetReaction(subject Subject, actorID uuid.UUID, kind models.ReactionKind) (*dto.ReactionResult, error) {
	if kind != models.KindRemove && !kind.Valid() {
		return nil, ErrInvalidReaction
	}

	ownerID, err := s.subjectOwner(s.db, subject)
	if err != nil {
		return nil, err
	}

	var result dto.ReactionResult
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Reaction
		err := tx.Where("subject_type = ? AND subject_id = ? AND user_id = ?",
			subject.Type, subject.ID, actorID).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if kind == models.KindRemove {
				result = dto.ReactionResult{Action: "none"}
				return nil
			}
			return s.addReaction(tx, subject, ownerID, actorID, kind, &result)

		case err != nil:
			return fmt.Errorf("failed to load reaction: %w", err)

		case kind == models.KindRemove || existing.Kind == kind:
			if err := tx.Delete(&existing).Error; err != nil {
				return fmt.Errorf("failed to delete reaction: %w", err)
			}
			if err := s.bumpCounter(tx, subject, "reaction_count", -1); err != nil {
				return err
			}
			result = dto.ReactionResult{Action: "removed"}
			return nil

		default:
			if err := tx.Model(&existing).Update("kind", kind).Error; err != nil {
				return fmt.Errorf("failed to update reaction: %w", err)
			}
			k := kind
			result = dto.ReactionResult{Action: "updated", Kind: &k}
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *EngagementService) addReaction(tx *gorm.DB, subject Subject, ownerID, actorID uuid.UUID, kind models.ReactionKind, result *dto.ReactionResult) error {
	reaction := models.Reaction{
		ID:          uuid.New(),
		SubjectType: subject.Type,
		SubjectID:   subject.ID,
		UserID:      actorID,
		Kind:        kind,
	}
	if err := tx.Create(&reaction).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a double-submit race: the unique index is the arbiter,
			// so fall back to updating the row that won.
			err := tx.Model(&models.Reaction{}).
				Where("subject_type = ? AND subject_id = ? AND user_id = ?",
					subject.Type, subject.ID, actorID).
				Update("kind", kind).Error
			if err != nil {
				return fmt.Errorf("failed to update reaction after race: %w", err)
			}
			k := kind
			*result = dto.ReactionResult{Action: "updated", Kind: &k}
			return nil
		}
		return fmt.Errorf("failed to create reaction: %w", err)
	}

	if err := s.bumpCounter(tx, subject, "reaction_count", 1); err != nil {
		return err
	}

	if ownerID != actorID {
		if err := s.notifications.NotifyReaction(tx, ownerID, actorID, reaction.ID); err != nil {
			return err
		}
	}

	k := kind
	*result = dto.ReactionResult{Action: "added", Kind: &k}
	return nil
}

// ToggleLike flips the like edge for (subject, actor). Returns true when the
// like was added, false when removed.
func (s *EngagementService) ToggleLike(subject Subject, actorID uuid.UUID) (bool, error) {
	if _, err := s.subjectOwner(s.db, subject); err != nil {
		return false, err
	}

	var liked bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("subject_type = ? AND subject_id = ? AND user_id = ?",
			subject.Type, subject.ID, actorID).First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			like := models.Like{
				ID:          uuid.New(),
				SubjectType: subject.Type,
				SubjectID:   subject.ID,
				UserID:      actorID,
			}
			if err := tx.Create(&like).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// Concurrent double-toggle; treat as already liked.
					liked = true
					return nil
				}
				return fmt.Errorf("failed to create like: %w", err)
			}
			liked = true
			return s.bumpCounter(tx, subject, "like_count", 1)
		}
		if err != nil {
			return fmt.Errorf("failed to load like: %w", err)
		}

		if err := tx.Delete(&existing).Error; err != nil {
			return fmt.Errorf("failed to delete like: %w", err)
		}
		liked = false
		return s.bumpCounter(tx, subject, "like_count", -1)
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// Liked reports whether the actor currently likes the subject.
func (s *EngagementService) Liked(subject Subject, actorID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Like{}).
		Where("subject_type = ? AND subject_id = ? AND user_id = ?", subject.Type, subject.ID, actorID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

// ReactionCount returns the total number of reactions on the subject.
func (s *EngagementService) ReactionCount(subject Subject) (int64, error) {
	var count int64
	err := s.db.Model(&models.Reaction{}).
		Where("subject_type = ? AND subject_id = ?", subject.Type, subject.ID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}
	return count, nil
}

// ReactionBreakdown returns per-kind counts ordered by count descending,
// ties broken by the fixed kind enum order.
func (s *EngagementService) ReactionBreakdown(subject Subject) ([]dto.KindCount, error) {
	var rows []dto.KindCount
	err := s.db.Model(&models.Reaction{}).
		Select("kind, COUNT(*) AS count").
		Where("subject_type = ? AND subject_id = ?", subject.Type, subject.ID).
		Group("kind").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions by kind: %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return models.KindRank(rows[i].Kind) < models.KindRank(rows[j].Kind)
	})
	return rows, nil
}

// TopReactions returns the top n kinds, each with the earliest reactor of
// that kind as a representative.
func (s *EngagementService) TopReactions(subject Subject, n int) ([]dto.TopReaction, error) {
	breakdown, err := s.ReactionBreakdown(subject)
	if err != nil {
		return nil, err
	}
	if len(breakdown) > n {
		breakdown = breakdown[:n]
	}

	top := make([]dto.TopReaction, 0, len(breakdown))
	for _, kc := range breakdown {
		var first models.Reaction
		err := s.db.Where("subject_type = ? AND subject_id = ? AND kind = ?",
			subject.Type, subject.ID, kc.Kind).
			Preload("User").
			Order("created_at ASC").
			First(&first).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load representative reactor: %w", err)
		}
		top = append(top, dto.TopReaction{
			Kind:       kc.Kind,
			Count:      kc.Count,
			SampleUser: first.User.Username,
		})
	}
	return top, nil
}

// ReactionList returns every reactor on the subject with their kind.
func (s *EngagementService) ReactionList(subject Subject) ([]dto.ReactorEntry, error) {
	var reactions []models.Reaction
	err := s.db.Where("subject_type = ? AND subject_id = ?", subject.Type, subject.ID).
		Preload("User").
		Order("created_at ASC").
		Find(&reactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}

	entries := make([]dto.ReactorEntry, len(reactions))
	for i, r := range reactions {
		entries[i] = dto.ReactorEntry{
			User: dto.UserSummary{ID: r.User.ID, Username: r.User.Username, Avatar: r.User.Avatar},
			Kind: r.Kind,
		}
	}
	return entries, nil
}

// Summary bundles the queries the content detail endpoints render.
func (s *EngagementService) Summary(subject Subject, topN int) (*dto.ReactionSummary, error) {
	total, err := s.ReactionCount(subject)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.ReactionBreakdown(subject)
	if err != nil {
		return nil, err
	}
	top, err := s.TopReactions(subject, topN)
	if err != nil {
		return nil, err
	}
	return &dto.ReactionSummary{Total: total, Breakdown: breakdown, Top: top}, nil
}

func (s *EngagementService) subjectOwner(db *gorm.DB, subject Subject) (uuid.UUID, error) {
	switch subject.Type {
	case models.SubjectPost:
		var post models.Post
		if err := db.Select("id", "user_id").First(&post, "id = ?", subject.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, ErrContentNotFound
			}
			return uuid.Nil, fmt.Errorf("failed to load post: %w", err)
		}
		return post.UserID, nil
	case models.SubjectVideo:
		var video models.Video
		if err := db.Select("id", "user_id").First(&video, "id = ?", subject.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, ErrContentNotFound
			}
			return uuid.Nil, fmt.Errorf("failed to load video: %w", err)
		}
		return video.UserID, nil
	default:
		return uuid.Nil, ErrContentNotFound
	}
}

// deleteSubjectRows removes the engagement rows attached to the given
// content ids: reactions, likes and comments from any user. Content
// deletion paths call this inside their own transactions; the subject
// reference carries no FK, so nothing cascades without it.
func deleteSubjectRows(tx *gorm.DB, subjectType string, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	for _, model := range []interface{}{&models.Reaction{}, &models.Like{}, &models.Comment{}} {
		if err := tx.Where("subject_type = ? AND subject_id IN ?", subjectType, ids).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to delete engagement rows: %w", err)
		}
	}
	return nil
}

func (s *EngagementService) bumpCounter(tx *gorm.DB, subject Subject, column string, delta int) error {
	var model interface{}
	switch subject.Type {
	case models.SubjectPost:
		model = &models.Post{}
	case models.SubjectVideo:
		model = &models.Video{}
	default:
		return ErrContentNotFound
	}

	expr := gorm.Expr(column+" + ?", delta)
	if delta < 0 {
		expr = gorm.Expr("CASE WHEN "+column+" > 0 THEN "+column+" - 1 ELSE 0 END")
	}
	err := tx.Model(model).Where("id = ?", subject.ID).Update(column, expr).Error
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", column, err)
	}
	return nil
}
