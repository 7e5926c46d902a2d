// Package visibility derives what a given viewer may see from the current
// block edges and hide markers. Nothing here is cached or materialized:
// every listing recomputes the exclusion sets so a fresh block takes effect
// on the next read.
package visibility

import (
	"github.com/elifkaracan/vloggy-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExcludedAuthorIDs returns the union of accounts the viewer has blocked
// and accounts that have blocked the viewer. Content and profiles authored
// by any of them are invisible to the viewer, in both directions.
func ExcludedAuthorIDs(db *gorm.DB, viewerID uuid.UUID) ([]uuid.UUID, error) {
	var blocks []models.Block
	if err := db.Where("blocker_id = ? OR blocked_id = ?", viewerID, viewerID).Find(&blocks).Error; err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(blocks))
	ids := make([]uuid.UUID, 0, len(blocks))
	for _, b := range blocks {
		other := b.BlockedID
		if b.BlockedID == viewerID {
			other = b.BlockerID
		}
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		ids = append(ids, other)
	}
	return ids, nil
}

// HiddenPostIDs returns the posts the viewer has hidden from their own feed.
func HiddenPostIDs(db *gorm.DB, viewerID uuid.UUID) ([]uuid.UUID, error) {
	var markers []models.HiddenPost
	if err := db.Where("user_id = ?", viewerID).Find(&markers).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(markers))
	for i, m := range markers {
		ids[i] = m.PostID
	}
	return ids, nil
}

// VisiblePosts excludes posts authored by excluded accounts and posts the
// viewer has hidden.
func VisiblePosts(excludedAuthors, hiddenPosts []uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(excludedAuthors) > 0 {
			db = db.Where("user_id NOT IN ?", excludedAuthors)
		}
		if len(hiddenPosts) > 0 {
			db = db.Where("id NOT IN ?", hiddenPosts)
		}
		return db
	}
}

// VisibleProfiles excludes the viewer's excluded accounts from profile,
// follower and following listings.
func VisibleProfiles(excludedAuthors []uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(excludedAuthors) > 0 {
			db = db.Where("id NOT IN ?", excludedAuthors)
		}
		return db
	}
}

// VisibleComments excludes comments authored by excluded accounts.
func VisibleComments(excludedAuthors []uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(excludedAuthors) > 0 {
			db = db.Where("user_id NOT IN ?", excludedAuthors)
		}
		return db
	}
}
