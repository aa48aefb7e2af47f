package entity

import (
	"time"
)

// OwnerTypeTeacher is the discriminator stored on sessions owned by teachers.
// It exists so the sessions table can serve other principal types later
// without a schema change.
const OwnerTypeTeacher = "teacher"

// Session binds a teacher to a pair of bearer tokens with independent
// expiries. The access token is short-lived and rotated in place by Refresh;
// the refresh token is long-lived and stable until explicit sign-out.
type Session struct {
	ID                    int64
	UUID                  string
	OwnerType             string
	OwnerUUID             string // Back-reference to Teacher.UUID.
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
