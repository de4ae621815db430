// Package domain contains core concepts of the chat system.
// This file defines User aggregates and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"slices"
	"time"
)

type UserID int64

const RoleAdmin = "admin"
const RoleUser = "user"

// User is owned exclusively by the user registry.
// Chatboxes reference users by id only, so renames and ban-state
// changes are visible everywhere through a single record.
type User struct {
	ID           UserID
	Username     string
	PasswordHash string
	Roles        []string
	Online       bool
	Banned       bool
	CreatedAt    time.Time
}

func (u User) IsAdmin() bool {
	return slices.Contains(u.Roles, RoleAdmin)
}
