// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lectern/internal/domain/entity"
)

// ErrTeacherNotFound is returned when no teacher matches the lookup key.
var ErrTeacherNotFound = errors.New("teacher not found")

// ErrUniqueViolation is returned when an insert collides with a storage-level
// uniqueness constraint (e.g. an already registered email).
var ErrUniqueViolation = errors.New("unique constraint violation")

// TeacherRepository defines the standard operations for teacher persistence.
// The application layer depends on this interface, not the concrete implementation.
type TeacherRepository interface {
	// FindByEmail retrieves a single teacher by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Teacher, error)

	// FindByUUID retrieves a single teacher by their public UUID.
	FindByUUID(ctx context.Context, uuid string) (*entity.Teacher, error)

	// Create persists a new teacher. The entity's ID and timestamps are
	// filled in from the generated row.
	Create(ctx context.Context, teacher *entity.Teacher) error

	// Count returns the total number of teachers.
	Count(ctx context.Context) (int64, error)
}
