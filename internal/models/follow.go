package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge: follower subscribes to following's content.
type Follow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FollowerID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_follows_pair" json:"follower_id"`
	FollowingID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_follows_pair" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
	Follower    User      `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Following   User      `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Follow) TableName() string {
	return "follows"
}
