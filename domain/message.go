// Package domain contains core concepts of the chat system.
// This file defines Message entities and related rules.
package domain

import (
	"time"
)

type MessageID int64

// Message represents one chat entry. Once created, id, sender, content
// and timestamp never change; only Hidden mutates.
type Message struct {
	ID        MessageID
	SenderID  UserID
	Content   string
	Lang      string
	CreatedAt time.Time
	Hidden    bool
}

// Before reports whether m sorts before other in the authoritative
// log order: timestamp first, message id as tie-break.
func (m Message) Before(other Message) bool {
	if m.CreatedAt.Equal(other.CreatedAt) {
		return m.ID < other.ID
	}
	return m.CreatedAt.Before(other.CreatedAt)
}
