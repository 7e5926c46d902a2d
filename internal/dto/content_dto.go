package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Image   string `json:"image"`
	Content string `json:"content"`
}

type CreateVideoRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Media       string          `json:"media"`
	Meta        json.RawMessage `json:"meta"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

// PostItem is the feed/detail view of a post, built per viewer.
type PostItem struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"user_id"`
	Username      string        `json:"username"`
	Avatar        string        `json:"avatar"`
	Image         string        `json:"image"`
	Content       string        `json:"content"`
	LikeCount     int           `json:"like_count"`
	CommentCount  int           `json:"comment_count"`
	ReactionCount int           `json:"reaction_count"`
	Liked         bool          `json:"liked"`
	TopReactions  []TopReaction `json:"top_reactions"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// VideoItem is the feed/detail view of a vlog entry.
type VideoItem struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Username      string          `json:"username"`
	Avatar        string          `json:"avatar"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Media         string          `json:"media"`
	Meta          json.RawMessage `json:"meta"`
	LikeCount     int             `json:"like_count"`
	CommentCount  int             `json:"comment_count"`
	ReactionCount int             `json:"reaction_count"`
	Liked         bool            `json:"liked"`
	CreatedAt     time.Time       `json:"created_at"`
}

type CommentItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
