package postgres

import (
	"context"
	"slices"

	"steeple/internal/domain/entity"
	"steeple/internal/domain/repository"
	"steeple/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// memberRepository implements the repository.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// FindMemberByID retrieves a member by their unique ID.
func (repo *memberRepository) FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberM model.MemberModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by ID")
	}

	return toMemberDomain(&memberM), nil
}

// AddDeviceID adds a device identity to the member's set with set-union
// semantics. The row is locked for the read-modify-write so concurrent
// registrations from the same member cannot lose an identity.
func (repo *memberRepository) AddDeviceID(ctx context.Context, memberID uuid.UUID, deviceID string) error {
	return repo.mutateDeviceIDs(ctx, memberID, func(ids []string) []string {
		if slices.Contains(ids, deviceID) {
			return ids
		}

		return append(ids, deviceID)
	})
}

// RemoveDeviceID removes a device identity from the member's set.
func (repo *memberRepository) RemoveDeviceID(ctx context.Context, memberID uuid.UUID, deviceID string) error {
	return repo.mutateDeviceIDs(ctx, memberID, func(ids []string) []string {
		return slices.DeleteFunc(ids, func(id string) bool {
			return id == deviceID
		})
	})
}

// ReplaceDeviceIDs overwrites the member's device-id set entirely.
func (repo *memberRepository) ReplaceDeviceIDs(ctx context.Context, memberID uuid.UUID, deviceIDs []string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", memberID).
		Update("device_ids", datatypes.NewJSONSlice(deviceIDs))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to replace member device IDs")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// mutateDeviceIDs applies fn to the member's device-id set under a row lock.
func (repo *memberRepository) mutateDeviceIDs(ctx context.Context, memberID uuid.UUID, fn func([]string) []string) error {
	var memberM model.MemberModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", memberID).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrMemberNotFound
		}

		return errors.Wrap(err, "failed to load member for device ID update")
	}

	updated := fn([]string(memberM.DeviceIDs))

	if err := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", memberID).
		Update("device_ids", datatypes.NewJSONSlice(updated)).Error; err != nil {
		return errors.Wrap(err, "failed to update member device IDs")
	}

	return nil
}

// --- Mapper Functions ---

// toMemberDomain converts a GORM MemberModel to a domain Member entity.
func toMemberDomain(data *model.MemberModel) *entity.Member {
	if data == nil {
		return nil
	}

	return &entity.Member{
		ID:          data.ID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		DeviceIDs:   []string(data.DeviceIDs),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
