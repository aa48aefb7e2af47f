package model

import (
	"time"
)

// SessionModel mirrors the 'sessions' table. Owner is stored polymorphically
// as (owner_type, owner_uuid) so other principal kinds can share the table.
type SessionModel struct {
	ID                    int64  `gorm:"primaryKey;autoIncrement"`
	UUID                  string `gorm:"type:uuid;uniqueIndex;not null"`
	OwnerType             string `gorm:"type:varchar(32);not null;index:idx_sessions_owner"`
	OwnerUUID             string `gorm:"type:uuid;not null;index:idx_sessions_owner"`
	AccessToken           string `gorm:"type:varchar(64);uniqueIndex;not null"`
	AccessTokenExpiresAt  time.Time
	RefreshToken          string `gorm:"type:varchar(64);uniqueIndex;not null"`
	RefreshTokenExpiresAt time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
