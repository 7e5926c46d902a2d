package dto

import "github.com/elifkaracan/vloggy-backend/internal/models"

type ReactionRequest struct {
	Kind models.ReactionKind `json:"kind"`
}

// ReactionResult reports the state transition a SetReaction call produced.
// Kind is nil when the transition ended in no reaction.
type ReactionResult struct {
	Action string               `json:"action"` // added, updated, removed, none
	Kind   *models.ReactionKind `json:"kind"`
}

type LikeResult struct {
	Liked  bool   `json:"liked"`
	Action string `json:"action"` // added, removed
}

type KindCount struct {
	Kind  models.ReactionKind `json:"kind"`
	Count int64               `json:"count"`
}

// TopReaction carries one representative reactor alongside the kind count.
type TopReaction struct {
	Kind       models.ReactionKind `json:"kind"`
	Count      int64               `json:"count"`
	SampleUser string              `json:"sample_user"`
}

type ReactorEntry struct {
	User UserSummary         `json:"user"`
	Kind models.ReactionKind `json:"kind"`
}

type ReactionSummary struct {
	Total     int64         `json:"total"`
	Breakdown []KindCount   `json:"breakdown"`
	Top       []TopReaction `json:"top"`
}
