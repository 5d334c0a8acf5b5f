package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office account.
type Admin struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"-"`
}

// AdminSession is one login. Tokens carry its ID so logout can revoke them.
type AdminSession struct {
	BaseModel
	AdminID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"admin_id"`
	Admin     *Admin     `json:"admin,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`
}

// Active reports whether the session can still authorize requests at now.
func (s AdminSession) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
