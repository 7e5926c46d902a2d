package dto

import (
	"time"

	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/google/uuid"
)

type NotificationItem struct {
	ID           uuid.UUID            `json:"id"`
	Kind         string               `json:"kind"`
	Actor        UserSummary          `json:"actor"`
	ReactionKind *models.ReactionKind `json:"reaction_kind,omitempty"`
	SubjectType  string               `json:"subject_type,omitempty"`
	SubjectID    *uuid.UUID           `json:"subject_id,omitempty"`
	IsRead       bool                 `json:"is_read"`
	CreatedAt    time.Time            `json:"created_at"`
}

// NotificationFeed is the full listing for one recipient; counts are
// computed at query time, not cached.
type NotificationFeed struct {
	TotalCount    int64              `json:"total_count"`
	UnreadCount   int64              `json:"unread_count"`
	Notifications []NotificationItem `json:"notifications"`
}
