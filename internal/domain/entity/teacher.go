// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Teacher represents a registered principal identified by email and password.
// The numeric ID is a storage-level surrogate; UUID is the stable external
// identifier handed to clients and referenced by sessions.
type Teacher struct {
	ID             int64
	UUID           string
	Email          string
	PasswordDigest string // Argon2id digest of the password. Never the plaintext.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
