package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MemberModel is the GORM-specific struct for the 'members' table.
// DeviceIDs is stored as a JSONB array; it is the authoritative set of device
// identities for the member and may drift from the device_tokens table until
// the sanitizer repairs it.
type MemberModel struct {
	ID          uuid.UUID                    `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email       string                       `gorm:"type:varchar(255);not null;uniqueIndex"`
	DisplayName string                       `gorm:"type:varchar(255);not null"`
	DeviceIDs   datatypes.JSONSlice[string]  `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
