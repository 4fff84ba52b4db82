// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// ReportStatus is the moderation state of a report.
type ReportStatus string

const (
	// ReportStatusPending is the initial state of every report.
	ReportStatusPending ReportStatus = "pending"
	// ReportStatusReviewed marks a report a moderator has looked at.
	ReportStatusReviewed ReportStatus = "reviewed"
	// ReportStatusResolved marks a report that required no further action.
	ReportStatusResolved ReportStatus = "resolved"
)

// Report is an append-only abuse report against a user and/or a post.
type Report struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	ReporterID     uint         `gorm:"not null;index" json:"reporter_id"`
	ReportedUserID *uint        `gorm:"index" json:"reported_user_id,omitempty"`
	ReportedPostID *uint        `gorm:"index" json:"reported_post_id,omitempty"`
	Reason         string       `gorm:"not null" json:"reason"`
	Description    string       `gorm:"type:text" json:"description"`
	Status         ReportStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
}
