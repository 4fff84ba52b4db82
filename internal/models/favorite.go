// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Favorite bookmarks a post for a user. At most one row per (user, post)
// pair; existence drives Post.FavoriteCount.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_pair" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_favorite_pair;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	Post *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}
