// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"steeple/internal/domain/entity"
	"steeple/internal/domain/repository"
	"steeple/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrDeviceNotFound is returned when a token record is not found
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceUnauthorized is returned when a member tries to access a device they don't own
	ErrDeviceUnauthorized = errors.New("unauthorized to access this device")
)

type tokenService struct {
	tokenRepo repository.TokenRepository
	txManager repository.TransactionManager
}

// NewTokenService creates a new token service instance
func NewTokenService(tokenRepo repository.TokenRepository, txManager repository.TransactionManager) usecase.TokenUsecase {
	return &tokenService{
		tokenRepo: tokenRepo,
		txManager: txManager,
	}
}

// RegisterToken records or refreshes a push token for a member.
// The token value is the upsert key: when a known value arrives with a new
// owner or device identity, the existing record is reassigned in place so a
// single token never appears twice. The member's device-id set picks up the
// identity in the same transaction.
func (s *tokenService) RegisterToken(ctx context.Context, ownerID uuid.UUID, info *usecase.TokenInfo) (*entity.DeviceToken, error) {
	// Clients that could not obtain a token (denied permission, simulator)
	// still call registration. Treat it as a no-op rather than an error.
	if info == nil || info.Token == "" {
		return nil, nil
	}

	token := &entity.DeviceToken{
		OwnerID:              ownerID,
		Token:                info.Token,
		DeviceID:             info.DeviceID,
		Platform:             info.Platform,
		NotificationsEnabled: true,
		LastUsedAt:           time.Now(),
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewTokenRepository().UpsertToken(ctx, token); err != nil {
			return fmt.Errorf("failed to upsert token: %w", err)
		}

		if info.DeviceID != "" {
			if err := repoFactory.NewMemberRepository().AddDeviceID(ctx, ownerID, info.DeviceID); err != nil {
				return fmt.Errorf("failed to add device ID to member: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return token, nil
}

// GetOwnerDevices retrieves all token records for a member
func (s *tokenService) GetOwnerDevices(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceToken, error) {
	tokens, err := s.tokenRepo.FindTokensByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tokens by owner: %w", err)
	}

	return tokens, nil
}

// RemoveDevice deletes a token record owned by the member. The device
// identity leaves the member's set in the same transaction, unless another
// surviving record still carries it.
func (s *tokenService) RemoveDevice(ctx context.Context, ownerID, tokenID uuid.UUID) error {
	// Fetch token to verify ownership
	token, err := s.tokenRepo.FindTokenByID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return ErrDeviceNotFound
		}

		return fmt.Errorf("failed to find token by ID: %w", err)
	}

	// Verify ownership
	if token.OwnerID != ownerID {
		return ErrDeviceUnauthorized
	}

	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()

		if err := tokenRepo.DeleteToken(ctx, tokenID); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}

		if token.DeviceID == "" {
			return nil
		}

		remaining, err := tokenRepo.FindTokensByOwner(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("failed to find remaining tokens: %w", err)
		}
		for _, other := range remaining {
			if other.DeviceID == token.DeviceID {
				// Another token still represents this device.
				return nil
			}
		}

		if err := repoFactory.NewMemberRepository().RemoveDeviceID(ctx, ownerID, token.DeviceID); err != nil {
			return fmt.Errorf("failed to remove device ID from member: %w", err)
		}

		return nil
	})
}

// SetNotificationsEnabled flips the per-device opt-out flag
func (s *tokenService) SetNotificationsEnabled(ctx context.Context, ownerID, tokenID uuid.UUID, enabled bool) error {
	// Fetch token to verify ownership
	token, err := s.tokenRepo.FindTokenByID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return ErrDeviceNotFound
		}

		return fmt.Errorf("failed to find token by ID: %w", err)
	}

	// Verify ownership
	if token.OwnerID != ownerID {
		return ErrDeviceUnauthorized
	}

	if err := s.tokenRepo.UpdateNotificationsEnabled(ctx, tokenID, enabled); err != nil {
		return fmt.Errorf("failed to update notifications flag: %w", err)
	}

	return nil
}
