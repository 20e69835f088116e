// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"gorm.io/gorm/clause"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// UpsertToken inserts a token record or updates the existing record keyed by
// the same token value. The token column carries a unique index, so the
// insert-or-update resolves atomically in the database.
func (repo *tokenRepository) UpsertToken(ctx context.Context, token *entity.DeviceToken) error {
	tokenM := fromTokenDomain(token)
	if tokenM.LastUsedAt.IsZero() {
		tokenM.LastUsedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"owner_id", "device_id", "platform", "last_used_at", "updated_at",
			}),
		}).
		Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDeviceRegistrationFailed.WrapMessage("invalid member reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDeviceRegistrationFailed.WrapMessage("missing required token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt
	token.LastUsedAt = tokenM.LastUsedAt

	return nil
}

// FindTokenByID retrieves a token record by its unique ID.
func (repo *tokenRepository) FindTokenByID(ctx context.Context, id uuid.UUID) (*entity.DeviceToken, error) {
	var tokenM model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find device token by ID")
	}

	return toTokenDomain(&tokenM), nil
}

// FindTokensByValue retrieves every record matching a token value.
func (repo *tokenRepository) FindTokensByValue(ctx context.Context, token string) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Order("created_at ASC, id ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens by value")
	}

	return toTokenDomainSlice(tokenModels), nil
}

// FindTokensByOwner retrieves all token records for a specific member.
func (repo *tokenRepository) FindTokensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens by owner")
	}

	return toTokenDomainSlice(tokenModels), nil
}

// FindAllTokensOrdered retrieves every token record in first-seen order.
func (repo *tokenRepository) FindAllTokensOrdered(ctx context.Context) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list device tokens")
	}

	return toTokenDomainSlice(tokenModels), nil
}

// FindEnabledTokens retrieves all records with notifications enabled.
func (repo *tokenRepository) FindEnabledTokens(ctx context.Context) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("notifications_enabled = ?", true).
		Order("created_at ASC, id ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find enabled device tokens")
	}

	return toTokenDomainSlice(tokenModels), nil
}

// UpdateNotificationsEnabled flips the per-device opt-out flag.
func (repo *tokenRepository) UpdateNotificationsEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("id = ?", id).
		Update("notifications_enabled", enabled)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notifications flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// DeleteToken removes a token record by its ID.
func (repo *tokenRepository) DeleteToken(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeviceTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:                   data.ID,
		OwnerID:              data.OwnerID,
		Token:                data.Token,
		DeviceID:             data.DeviceID,
		Platform:             data.Platform,
		NotificationsEnabled: data.NotificationsEnabled,
		LastUsedAt:           data.LastUsedAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func toTokenDomainSlice(data []*model.DeviceTokenModel) []*entity.DeviceToken {
	tokens := make([]*entity.DeviceToken, 0, len(data))
	for _, tokenM := range data {
		tokens = append(tokens, toTokenDomain(tokenM))
	}

	return tokens
}

// fromTokenDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:                   data.ID,
		OwnerID:              data.OwnerID,
		Token:                data.Token,
		DeviceID:             data.DeviceID,
		Platform:             data.Platform,
		NotificationsEnabled: data.NotificationsEnabled,
		LastUsedAt:           data.LastUsedAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
