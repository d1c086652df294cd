// Package pushtokenrepo stores push-delivery addresses per party.
package pushtokenrepo

import (
	"time"

	"github.com/google/uuid"
)

// PushTokenDTO is one registered device token. A token belongs to at most one owner.
type PushTokenDTO struct {
	Token     string    `gorm:"type:varchar(255);primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for push tokens.
func (PushTokenDTO) TableName() string {
	return "push_tokens"
}
