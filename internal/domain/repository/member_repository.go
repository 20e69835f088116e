package repository

import (
	"context"

	"steeple/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMemberNotFound is returned when a member is not found.
var ErrMemberNotFound = errors.New("member not found")

// MemberRepository defines the interface for member database operations.
// The pipeline only touches the member's device-id set; profile CRUD lives
// in the community service.
type MemberRepository interface {
	// FindMemberByID retrieves a member by their unique ID.
	FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// AddDeviceID adds a device identity to the member's set. Adding an
	// identity that is already present is a no-op (set-union semantics).
	AddDeviceID(ctx context.Context, memberID uuid.UUID, deviceID string) error

	// RemoveDeviceID removes a device identity from the member's set.
	// Removing an absent identity is a no-op.
	RemoveDeviceID(ctx context.Context, memberID uuid.UUID, deviceID string) error

	// ReplaceDeviceIDs overwrites the member's device-id set entirely.
	// Used by the sanitizer to repair drift; this is a full overwrite,
	// not a merge.
	ReplaceDeviceIDs(ctx context.Context, memberID uuid.UUID, deviceIDs []string) error
}
