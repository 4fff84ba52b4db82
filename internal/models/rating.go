// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Rating is a thumbs up/down from one user about another. At most one row
// exists per (rater, rated) pair; a repeat rating overwrites IsPositive in
// place instead of inserting a second row.
type Rating struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RaterID     uint      `gorm:"not null;uniqueIndex:idx_rating_pair" json:"rater_id"`
	RatedUserID uint      `gorm:"not null;uniqueIndex:idx_rating_pair;index" json:"rated_user_id"`
	IsPositive  bool      `gorm:"not null" json:"is_positive"`
	CreatedAt   time.Time `json:"created_at"`

	Rater     *User `gorm:"foreignKey:RaterID" json:"rater,omitempty"`
	RatedUser *User `gorm:"foreignKey:RatedUserID" json:"rated_user,omitempty"`
}
