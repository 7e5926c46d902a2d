package models

import (
	"time"

	"github.com/google/uuid"
)

// Block is a directed edge: blocker no longer sees blocked and vice versa.
// The pair is unique; creating a block removes any follow edge between the
// two users in either direction (see BlockService).
type Block struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BlockerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_blocks_pair" json:"blocker_id"`
	BlockedID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_blocks_pair" json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
	Blocker   User      `gorm:"foreignKey:BlockerID;constraint:OnDelete:CASCADE" json:"-"`
	Blocked   User      `gorm:"foreignKey:BlockedID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Block) TableName() string {
	return "blocks"
}
