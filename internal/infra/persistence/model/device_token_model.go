package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
// It represents a push token registered by a member's device. The token value
// carries a unique index so registration can upsert on conflict.
type DeviceTokenModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID              uuid.UUID `gorm:"type:uuid;not null;index"`
	Token                string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	DeviceID             string    `gorm:"type:varchar(255);not null"`
	Platform             string    `gorm:"type:varchar(50);not null"`
	NotificationsEnabled bool      `gorm:"not null;default:true"`
	LastUsedAt           time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
