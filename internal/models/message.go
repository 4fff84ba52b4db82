// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Message is a direct message between two users. There is no conversation
// table; a conversation is the derived set of messages between an unordered
// pair of user IDs. Rows are immutable except for the IsRead flag.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	Sender     *User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Receiver   *User     `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// Conversation is a read-side projection: one entry per counterpart the user
// has exchanged at least one message with, carrying the most recent message.
// It is never persisted.
type Conversation struct {
	OtherUser   *User    `json:"other_user"`
	LastMessage *Message `json:"last_message"`
}
