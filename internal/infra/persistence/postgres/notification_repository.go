package postgres

import (
	"context"
	"time"

	"steeple/internal/domain/entity"
	domainerrors "steeple/internal/domain/errors"
	"steeple/internal/domain/repository"
	"steeple/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification appends a new inbox entry.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.InboxNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMemberNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationsByRecipient retrieves a member's inbox page, newest first.
func (repo *notificationRepository) FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.InboxNotification, error) {
	var notificationModels []*model.InboxNotificationModel

	query := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC, id DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by recipient")
	}

	notifications := make([]*entity.InboxNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkNotificationRead stamps the read timestamp on an entry owned by the recipient.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, id, recipientID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InboxNotificationModel{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("read_at", time.Now())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM InboxNotificationModel to a domain entity.
func toNotificationDomain(data *model.InboxNotificationModel) *entity.InboxNotification {
	if data == nil {
		return nil
	}

	return &entity.InboxNotification{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		Type:        entity.NotificationType(data.Type),
		Message:     data.Message,
		Link:        data.Link,
		Screen:      data.Screen,
		ReadAt:      data.ReadAt,
		CreatedAt:   data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain entity to a GORM InboxNotificationModel.
func fromNotificationDomain(data *entity.InboxNotification) *model.InboxNotificationModel {
	if data == nil {
		return nil
	}

	return &model.InboxNotificationModel{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		Type:        string(data.Type),
		Message:     data.Message,
		Link:        data.Link,
		Screen:      data.Screen,
		ReadAt:      data.ReadAt,
		CreatedAt:   data.CreatedAt,
	}
}
