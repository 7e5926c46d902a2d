package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. Account deletion is a hard delete with an
// explicit cascade in AuthService, so no gorm.DeletedAt here.
// BlockCount is a cached counter of blocks this user has initiated;
// BlockService keeps it in step with the blocks table and never lets it
// go below zero.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username   string    `gorm:"size:35;not null;uniqueIndex" json:"username"`
	FirstName  string    `gorm:"size:35" json:"first_name"`
	LastName   string    `gorm:"size:35" json:"last_name"`
	Bio        string    `gorm:"size:280" json:"bio"`
	Email      string    `gorm:"size:255;not null;uniqueIndex" json:"-"`
	Password   string    `gorm:"not null" json:"-"`
	Avatar     string    `gorm:"size:255" json:"avatar"`
	BlockCount int       `gorm:"default:0" json:"block_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
