// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Block is a directional block from one user against another. At most one row
// per ordered pair. Messaging and profile visibility guards treat the
// relationship as bidirectional: a row in either direction denies both sides.
type Block struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BlockerID     uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocker_id"`
	BlockedUserID uint      `gorm:"not null;uniqueIndex:idx_block_pair;index" json:"blocked_user_id"`
	CreatedAt     time.Time `json:"created_at"`

	BlockedUser *User `gorm:"foreignKey:BlockedUserID" json:"blocked_user,omitempty"`
}
