package repository

import (
	"context"
	"errors"

	"lectern/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session matches the lookup key, and
// by Save/Destroy when the target row was deleted since it was loaded.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the standard operations for session persistence.
type SessionRepository interface {
	// FindByUUID retrieves a single teacher-owned session by its public UUID.
	FindByUUID(ctx context.Context, uuid string) (*entity.Session, error)

	// Create persists a new session. The entity's ID and timestamps are
	// filled in from the generated row.
	Create(ctx context.Context, session *entity.Session) error

	// Save writes the session's mutable fields back to storage.
	// Returns ErrSessionNotFound if the row no longer exists.
	Save(ctx context.Context, session *entity.Session) error

	// Destroy deletes the session row.
	// Returns ErrSessionNotFound if the row no longer exists.
	Destroy(ctx context.Context, session *entity.Session) error

	// Count returns the total number of sessions.
	Count(ctx context.Context) (int64, error)
}
