// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a listing in the Skip2Love application.
// Deleting a post flips IsActive to false; rows are never physically removed
// so favorites and reports keep valid references.
type Post struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	UserID        uint     `gorm:"not null;index" json:"user_id"`
	User          User     `gorm:"foreignKey:UserID" json:"user"`
	Title         string   `gorm:"not null" json:"title"`
	Description   string   `gorm:"type:text;not null" json:"description"`
	City          string   `gorm:"not null;index" json:"city"`
	IsPremium     bool     `gorm:"default:false" json:"is_premium"`
	Images        []string `gorm:"serializer:json" json:"images"`
	Tags          []string `gorm:"serializer:json" json:"tags"`
	IsActive      bool     `gorm:"default:true;index" json:"is_active"`
	ViewCount     int      `gorm:"default:0" json:"view_count"`
	FavoriteCount int      `gorm:"default:0" json:"favorite_count"`
	// IsFavorited indicates whether the requesting user favorited this post (computed)
	IsFavorited bool      `gorm:"->" json:"is_favorited"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
