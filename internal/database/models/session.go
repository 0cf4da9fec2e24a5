package models

import (
	"time"

	"github.com/google/uuid"
)

// Session stores the server-side half of a login session so logout can
// revoke it; TokenID matches the jti claim of the session cookie
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	TokenID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"token_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	IsRevoked bool      `gorm:"default:false" json:"is_revoked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

// TableName overrides the table name
func (Session) TableName() string {
	return "sessions"
}
