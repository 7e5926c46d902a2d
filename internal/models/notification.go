package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationFollow   = "follow"
	NotificationReaction = "reaction"
)

// Notification is created by NotificationService when a follow edge or a
// reaction is created; updates and removals never notify.
//
// Dedup keys differ by kind: one follow notification per (recipient, actor),
// one reaction notification per (recipient, actor, reaction). The unique
// index on (user_id, actor_id, reaction_id) backs the reaction key under
// races; NULL reaction ids on follow rows don't collide in Postgres, so the
// follow key is enforced by the service's existence check.
type Notification struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_notifications_dedup" json:"user_id"`
	ActorID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_notifications_dedup" json:"actor_id"`
	Kind       string     `gorm:"size:10;not null" json:"kind"`
	ReactionID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_notifications_dedup" json:"reaction_id"`
	IsRead     bool       `gorm:"default:false;index" json:"is_read"`
	CreatedAt  time.Time  `json:"created_at"`
	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Actor      User       `gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE" json:"-"`
	Reaction   *Reaction  `gorm:"foreignKey:ReactionID;constraint:OnDelete:CASCADE" json:"-"`
}
