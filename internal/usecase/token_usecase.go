// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"steeple/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenInfo represents the registration payload a client device sends after
// obtaining a push token.
type TokenInfo struct {
	Token    string `json:"token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// TokenUsecase defines the interface for device token lifecycle use cases.
type TokenUsecase interface {
	// RegisterToken records or refreshes a push token for a member. The
	// token value is the upsert key: a token that rotated to a new owner
	// or device identity is reassigned rather than duplicated. A blank
	// token is a silent no-op (the client could not obtain one) and
	// returns nil.
	RegisterToken(ctx context.Context, ownerID uuid.UUID, info *TokenInfo) (*entity.DeviceToken, error)

	// GetOwnerDevices retrieves all token records for a member.
	GetOwnerDevices(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceToken, error)

	// RemoveDevice deletes a token record owned by the member and removes
	// its device identity from the member's set in the same transaction.
	RemoveDevice(ctx context.Context, ownerID, tokenID uuid.UUID) error

	// SetNotificationsEnabled flips the per-device opt-out flag on a
	// record owned by the member.
	SetNotificationsEnabled(ctx context.Context, ownerID, tokenID uuid.UUID, enabled bool) error
}
