package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member represents a church member who can register devices and receive
// notifications. DeviceIDs is the authoritative set of device identities
// registered by this member; the token sanitizer repairs any drift between
// this set and the device token table.
type Member struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the member.
	Email       string    `json:"email"`        // Stable login identity.
	DisplayName string    `json:"display_name"` // Name shown in rankings and notifications.
	DeviceIDs   []string  `json:"device_ids"`   // Registered device identities owned by this member.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this record was created.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}
