package impl

import (
	"context"
	"errors"
	"fmt"

	"steeple/internal/domain/entity"
	"steeple/internal/domain/repository"
	"steeple/internal/usecase"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when an inbox entry is not found or
// belongs to another member.
var ErrNotificationNotFound = errors.New("notification not found")

const (
	defaultInboxPageSize = 50
	maxInboxPageSize     = 100
)

type inboxService struct {
	notificationRepo repository.NotificationRepository
}

// NewInboxService creates a new inbox service instance
func NewInboxService(notificationRepo repository.NotificationRepository) usecase.InboxUsecase {
	return &inboxService{
		notificationRepo: notificationRepo,
	}
}

// ListNotifications retrieves a member's inbox page, newest first
func (s *inboxService) ListNotifications(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.InboxNotification, error) {
	if limit <= 0 {
		limit = defaultInboxPageSize
	}
	if limit > maxInboxPageSize {
		limit = maxInboxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.FindNotificationsByRecipient(ctx, recipientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead stamps the read timestamp on an entry owned by the member
func (s *inboxService) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, id, recipientID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}
