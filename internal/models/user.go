// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a member of the Skip2Love application.
// Rating is the percentage of positive ratings (0-100) and is recomputed by
// the rating aggregator whenever a rating row is written.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"unique;not null" json:"username"`
	Email       string    `gorm:"unique;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	FullName    string    `json:"full_name"`
	Age         int       `json:"age"`
	City        string    `json:"city"`
	Bio         string    `json:"bio"`
	Phone       string    `json:"phone"`
	IsVerified  bool      `gorm:"default:false" json:"is_verified"`
	IsPremium   bool      `gorm:"default:false" json:"is_premium"`
	Avatar      string    `json:"avatar"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	Preferences []string  `gorm:"serializer:json" json:"preferences"`
	Rating      int       `gorm:"default:0" json:"rating"`
	RatingCount int       `gorm:"default:0" json:"rating_count"`
	IsBlocked   bool      `gorm:"default:false" json:"is_blocked"`
	LastActive  time.Time `gorm:"autoCreateTime" json:"last_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Posts       []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// PublicProfile strips fields that should not leak to other users.
func (u *User) PublicProfile() *User {
	clone := *u
	clone.Password = ""
	clone.Email = ""
	clone.Phone = ""
	clone.Posts = nil
	return &clone
}
