package dto

import (
	"time"

	"github.com/google/uuid"
)

type BlockUserRequest struct {
	BlockedID uuid.UUID `json:"blocked_id"`
}

type FollowRequest struct {
	FollowingID uuid.UUID `json:"following_id"`
}

// UserSummary is the compact account view used in reactor lists, follower
// audiences and notifications.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Avatar   string    `json:"avatar"`
}

type ProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Bio            string    `json:"bio"`
	Avatar         string    `json:"avatar"`
	PostCount      int64     `json:"post_count"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	TotalReactions int64     `json:"total_reactions"`
	CreatedAt      time.Time `json:"created_at"`
}
