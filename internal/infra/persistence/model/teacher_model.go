package model

import (
	"time"
)

// TeacherModel mirrors the 'teachers' table. The surrogate bigint ID stays
// internal; the UUID is the external identifier.
type TeacherModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	UUID           string `gorm:"type:uuid;uniqueIndex;not null"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordDigest string `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (TeacherModel) TableName() string {
	return "teachers"
}
