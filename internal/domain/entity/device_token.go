// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken represents a push token registered by a member's device.
// The token value is the delivery address; DeviceID identifies the physical
// device, which can rotate through several token values over its lifetime.
type DeviceToken struct {
	ID                   uuid.UUID `json:"id"`                    // The Global Unique Identifier (GUID) for the record.
	OwnerID              uuid.UUID `json:"owner_id"`              // The ID of the member who registered the device.
	Token                string    `json:"token"`                 // Opaque push token issued by the platform push service.
	DeviceID             string    `json:"device_id"`             // Composite device identity (model + OS + disambiguator).
	Platform             string    `json:"platform"`              // Device platform (ios, android).
	NotificationsEnabled bool      `json:"notifications_enabled"` // Per-device opt-out flag.
	LastUsedAt           time.Time `json:"last_used_at"`          // Timestamp of last confirmed activity.
	CreatedAt            time.Time `json:"created_at"`            // Timestamp of when this record was created.
	UpdatedAt            time.Time `json:"updated_at"`            // Timestamp of the last modification.
}
