package repository

import (
	"context"

	"steeple/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when an inbox notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for in-app inbox operations.
type NotificationRepository interface {
	// CreateNotification appends a new inbox entry. The pipeline never
	// mutates entries after creation.
	CreateNotification(ctx context.Context, notification *entity.InboxNotification) error

	// FindNotificationsByRecipient retrieves a member's inbox page, newest first.
	FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.InboxNotification, error)

	// MarkNotificationRead stamps the read timestamp on an entry owned by the recipient.
	MarkNotificationRead(ctx context.Context, id, recipientID uuid.UUID) error
}
