package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Subject types for reactions, likes and comments. Posts and videos share
// the engagement tables through (subject_type, subject_id) references.
const (
	SubjectPost  = "post"
	SubjectVideo = "video"
)

// Post is an image post. LikeCount/CommentCount/ReactionCount are cached
// counters maintained by the engagement and comment services.
type Post struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Image         string    `gorm:"size:255;not null" json:"image"`
	Content       string    `gorm:"size:1000" json:"content"`
	LikeCount     int       `gorm:"default:0" json:"like_count"`
	CommentCount  int       `gorm:"default:0" json:"comment_count"`
	ReactionCount int       `gorm:"default:0" json:"reaction_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	User          User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Video is a vlog entry. Meta holds whatever the external media pipeline
// reports (duration, thumbnail key, dimensions); the backend stores it
// opaquely.
type Video struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string         `gorm:"size:200;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	Media         string         `gorm:"size:255;not null" json:"media"`
	Meta          datatypes.JSON `json:"meta"`
	LikeCount     int            `gorm:"default:0" json:"like_count"`
	CommentCount  int            `gorm:"default:0" json:"comment_count"`
	ReactionCount int            `gorm:"default:0" json:"reaction_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	User          User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Comment belongs to a post or a video via the subject reference.
type Comment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectType string    `gorm:"size:10;not null;index:idx_comments_subject" json:"subject_type"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_subject" json:"subject_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Content     string    `gorm:"size:1000;not null" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// HiddenPost marks a post as hidden from one viewer's own feed. It has no
// effect on what other users see.
type HiddenPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_hidden_posts_pair" json:"user_id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_hidden_posts_pair" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}
