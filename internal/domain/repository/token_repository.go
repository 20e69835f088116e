// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"steeple/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device token persistence.
var (
	// ErrTokenNotFound is returned when a device token record is not found.
	ErrTokenNotFound = errors.New("device token not found")
	// ErrDuplicateToken is returned when trying to create a token record that already exists.
	ErrDuplicateToken = errors.New("device token already exists")
)

// TokenRepository defines the interface for device token database operations.
type TokenRepository interface {
	// UpsertToken inserts a new token record or, if a record with the same
	// token value exists, updates its owner, device identity, platform and
	// last-used timestamp in place.
	UpsertToken(ctx context.Context, token *entity.DeviceToken) error

	// FindTokenByID retrieves a token record by its unique ID.
	FindTokenByID(ctx context.Context, id uuid.UUID) (*entity.DeviceToken, error)

	// FindTokensByValue retrieves every record matching a token value.
	// More than one row for the same value is a defect state the sanitizer
	// eliminates, but the reconciliation path must handle it.
	FindTokensByValue(ctx context.Context, token string) ([]*entity.DeviceToken, error)

	// FindTokensByOwner retrieves all token records for a specific member.
	FindTokensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceToken, error)

	// FindAllTokensOrdered retrieves every token record ordered by
	// created_at ascending (id ascending as tiebreaker), giving the
	// sanitizer a deterministic first-seen order.
	FindAllTokensOrdered(ctx context.Context) ([]*entity.DeviceToken, error)

	// FindEnabledTokens retrieves all records with notifications enabled.
	FindEnabledTokens(ctx context.Context) ([]*entity.DeviceToken, error)

	// UpdateNotificationsEnabled flips the per-device opt-out flag.
	UpdateNotificationsEnabled(ctx context.Context, id uuid.UUID, enabled bool) error

	// DeleteToken removes a token record by its ID.
	DeleteToken(ctx context.Context, id uuid.UUID) error
}
