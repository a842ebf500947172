package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel holds tokens invalidated by logout until they expire.
type TokenBlacklistModel struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Token     string     `json:"token" gorm:"type:text;not null;index"`
	ExpiredAt time.Time  `json:"expired_at" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
