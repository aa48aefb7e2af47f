// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lectern/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new teacher.
type SignUpInput struct {
	Email    string
	Password string
}

// SignInInput defines the data required for a teacher to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// RefreshInput identifies the session to rotate and proves possession of
// its refresh token.
type RefreshInput struct {
	SessionUUID  string
	RefreshToken string
}

// SignOutInput identifies the session to terminate and proves possession of
// its refresh token.
type SignOutInput struct {
	SessionUUID  string
	RefreshToken string
}

// --- Output DTOs ---

// SignInOutput returns the freshly created session with both token pairs.
type SignInOutput struct {
	Session *entity.Session
}

// RefreshOutput returns the session with its rotated access token pair.
type RefreshOutput struct {
	Session *entity.Session
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SignUp registers a new teacher. It intentionally reveals nothing about
	// whether the email was already taken.
	SignUp(ctx context.Context, input SignUpInput) error

	// SignIn verifies credentials and opens a new session.
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)

	// Refresh rotates the session's access token pair.
	Refresh(ctx context.Context, input RefreshInput) (*RefreshOutput, error)

	// SignOut terminates the session.
	SignOut(ctx context.Context, input SignOutInput) error
}
