package usecase

import (
	"context"

	"steeple/internal/domain/entity"

	"github.com/google/uuid"
)

// InboxUsecase defines the interface for in-app inbox use cases.
type InboxUsecase interface {
	// ListNotifications retrieves a member's inbox page, newest first.
	ListNotifications(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.InboxNotification, error)

	// MarkRead stamps the read timestamp on an entry owned by the member.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
}
