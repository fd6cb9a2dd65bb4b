package blog

import (
	"time"

	"gorm.io/gorm"
)

// VisiblePosts is the predicate selecting posts eligible for anonymous
// display, as a gorm scope over the posts table:
//
//	is_published AND pub_date <= now AND (no category OR category published)
//
// A published post with a future pub_date is excluded until its timestamp
// passes; since "now" is taken fresh per request, the post crosses into
// visibility exactly when a later request's clock passes it.
func VisiblePosts(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where("posts.is_published AND posts.pub_date <= ? AND (posts.category_id IS NULL OR categories.is_published)", now)
	}
}
