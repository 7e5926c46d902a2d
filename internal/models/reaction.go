package models

import (
	"time"

	"github.com/google/uuid"
)

// ReactionKind is the fixed reaction vocabulary. KindRemove is never
// stored: submitting it forces an existing reaction off regardless of its
// current kind.
type ReactionKind string

const (
	KindLove   ReactionKind = "love"
	KindLike   ReactionKind = "like"
	KindHaha   ReactionKind = "haha"
	KindWow    ReactionKind = "wow"
	KindCrying ReactionKind = "crying"
	KindAngry  ReactionKind = "angry"

	KindRemove ReactionKind = "remove"
)

// ReactionKinds lists the storable kinds. The slice order doubles as the
// tie-break when ranking kinds with equal counts.
var ReactionKinds = []ReactionKind{
	KindLove, KindLike, KindHaha, KindWow, KindCrying, KindAngry,
}

func (k ReactionKind) Valid() bool {
	for _, known := range ReactionKinds {
		if k == known {
			return true
		}
	}
	return false
}

// KindRank returns the position of k in the fixed enum order, or
// len(ReactionKinds) for unknown values so they sort last.
func KindRank(k ReactionKind) int {
	for i, known := range ReactionKinds {
		if k == known {
			return i
		}
	}
	return len(ReactionKinds)
}

// Reaction is at most one row per (subject, user); changing kind mutates
// the row in place. The unique index is the arbiter under concurrent
// double-submits.
type Reaction struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectType string       `gorm:"size:10;not null;uniqueIndex:idx_reactions_subject_user" json:"subject_type"`
	SubjectID   uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_subject_user" json:"subject_id"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null;index;uniqueIndex:idx_reactions_subject_user" json:"user_id"`
	Kind        ReactionKind `gorm:"size:20;not null" json:"kind"`
	CreatedAt   time.Time    `json:"created_at"`
	User        User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Like is the second, kind-less engagement edge. It coexists with Reaction
// on the same content item on purpose.
type Like struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectType string    `gorm:"size:10;not null;uniqueIndex:idx_likes_subject_user" json:"subject_type"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_subject_user" json:"subject_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_likes_subject_user" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
