package impl

import (
	"context"
	"testing"

	"steeple/internal/domain/entity"
	"steeple/internal/domain/repository"
	mockRepo "steeple/internal/mocks/repository"
	"steeple/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tokenServiceFixtures holds all test dependencies for token service tests.
type tokenServiceFixtures struct {
	service    usecase.TokenUsecase
	tokenRepo  *mockRepo.MockTokenRepository
	memberRepo *mockRepo.MockMemberRepository
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
}

func createTestTokenService(t *testing.T) tokenServiceFixtures {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	memberRepo := mockRepo.NewMockMemberRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewTokenService(tokenRepo, txManager)

	return tokenServiceFixtures{
		service:    service,
		tokenRepo:  tokenRepo,
		memberRepo: memberRepo,
		txManager:  txManager,
		factory:    factory,
	}
}

// expectTransaction makes the transaction manager run the callback against
// the fixture's repository factory, as the real manager would.
func (f tokenServiceFixtures) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func TestTokenService_RegisterToken_NewToken(t *testing.T) {
	f := createTestTokenService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	info := &usecase.TokenInfo{
		Token:    "ExponentPushToken[abc]",
		DeviceID: "iPhone15,2-ios17",
		Platform: "ios",
	}

	f.expectTransaction(ctx)
	f.factory.EXPECT().NewTokenRepository().Return(f.tokenRepo)
	f.factory.EXPECT().NewMemberRepository().Return(f.memberRepo)

	f.tokenRepo.EXPECT().
		UpsertToken(ctx, mock.AnythingOfType("*entity.DeviceToken")).
		Return(nil)

	f.memberRepo.EXPECT().
		AddDeviceID(ctx, ownerID, "iPhone15,2-ios17").
		Return(nil)

	token, err := f.service.RegisterToken(ctx, ownerID, info)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, ownerID, token.OwnerID)
	assert.Equal(t, info.Token, token.Token)
	assert.Equal(t, info.DeviceID, token.DeviceID)
	assert.Equal(t, info.Platform, token.Platform)
	assert.True(t, token.NotificationsEnabled)
	assert.False(t, token.LastUsedAt.IsZero())
}

func TestTokenService_RegisterToken_BlankTokenIsNoOp(t *testing.T) {
	f := createTestTokenService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	// Simulators and permission-denied clients register with no token.
	token, err := f.service.RegisterToken(ctx, ownerID, &usecase.TokenInfo{DeviceID: "sim"})
	require.NoError(t, err)
	assert.Nil(t, token)

	token, err = f.service.RegisterToken(ctx, ownerID, nil)
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestTokenService_RegisterToken_UpsertError(t *testing.T) {
	f := createTestTokenService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	info := &usecase.TokenInfo{
		Token:    "ExponentPushToken[abc]",
		DeviceID: "iPhone15,2-ios17",
		Platform: "ios",
	}

	f.expectTransaction(ctx)
	f.factory.EXPECT().NewTokenRepository().Return(f.tokenRepo)

	expectedErr := errors.New("database error")
	f.tokenRepo.EXPECT().
		UpsertToken(ctx, mock.AnythingOfType("*entity.DeviceToken")).
		Return(expectedErr)

	token, err := f.service.RegisterToken(ctx, ownerID, info)
	assert.Error(t, err)
	assert.Nil(t, token)
	assert.Contains(t, err.Error(), "failed to upsert token")
}

func TestTokenService_GetOwnerDevices(t *testing.T) {
	f := createTestTokenService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expectedTokens := []*entity.DeviceToken{
		{ID: uuid.New(), OwnerID: ownerID},
		{ID: uuid.New(), OwnerID: ownerID},
	}

	f.tokenRepo.EXPECT().
		FindTokensByOwner(ctx, ownerID).
		Return(expectedTokens, nil)

	tokens, err := f.service.GetOwnerDevices(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, expectedTokens, tokens)
}

func TestTokenService_RemoveDevice_LastTokenForDevice(t *testing.T) {
	f := createTestTokenService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tokenID := uuid.New()
	existing := &entity.DeviceToken{
		ID:       tokenID,
		OwnerID:  ownerID,
		Token:    "ExponentPushToken[abc]",
		DeviceID: "iPhone15,2-ios17",
	}

	f.tokenRepo.EXPECT().
		FindTokenByID(ctx, tokenID).
		Return(existing, nil)

	f.expectTransaction(ctx)
	f.factory.EXPECT().NewTokenRepository().Return(f.tokenRepo)
	f.factory.EXPECT().NewMemberRepository().Return(f.memberRepo)

	f.tokenRepo.EXPECT().
		DeleteToken(ctx, tokenID).
		Return(nil)

	// No surviving token carries the device identity, so it leaves the set.
	f.tokenRepo.EXPECT().
		FindTokensByOwner(ctx, ownerID).
		Return([]*entity.DeviceToken{}, nil)

	f.memberRepo.EXPECT().
		RemoveDeviceID(ctx, ownerID, "iPhone15,2-ios17").
		Return(nil)

	err := f.service.RemoveDevice(ctx, ownerID, tokenID)
	require.NoError(t, err)
}

func TestTokenService_RemoveDevice_DeviceStillBackedByOtherToken(t *testing.T) {
	f := createTestTokenService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tokenID := uuid.New()
	existing := &entity.DeviceToken{
		ID:       tokenID,
		OwnerID:  ownerID,
		DeviceID: "iPhone15,2-ios17",
	}
	survivor := &entity.DeviceToken{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		DeviceID: "iPhone15,2-ios17",
	}

	f.tokenRepo.EXPECT().
		FindTokenByID(ctx, tokenID).
		Return(existing, nil)

	f.expectTransaction(ctx)
	f.factory.EXPECT().NewTokenRepository().Return(f.tokenRepo)

	f.tokenRepo.EXPECT().
		DeleteToken(ctx, tokenID).
		Return(nil)

	f.tokenRepo.EXPECT().
		FindTokensByOwner(ctx, ownerID).
		Return([]*entity.DeviceToken{survivor}, nil)

	// RemoveDeviceID must not be called: the identity is still backed.
	err := f.service.RemoveDevice(ctx, ownerID, tokenID)
	require.NoError(t, err)
}

func TestTokenService_RemoveDevice_NotFound(t *testing.T) {
	f := createTestTokenService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tokenID := uuid.New()

	f.tokenRepo.EXPECT().
		FindTokenByID(ctx, tokenID).
		Return(nil, repository.ErrTokenNotFound)

	err := f.service.RemoveDevice(ctx, ownerID, tokenID)
	assert.Error(t, err)
	assert.Equal(t, ErrDeviceNotFound, err)
}

func TestTokenService_RemoveDevice_Unauthorized(t *testing.T) {
	f := createTestTokenService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tokenID := uuid.New()
	existing := &entity.DeviceToken{
		ID:      tokenID,
		OwnerID: uuid.New(),
	}

	f.tokenRepo.EXPECT().
		FindTokenByID(ctx, tokenID).
		Return(existing, nil)

	err := f.service.RemoveDevice(ctx, ownerID, tokenID)
	assert.Error(t, err)
	assert.Equal(t, ErrDeviceUnauthorized, err)
}

func TestTokenService_SetNotificationsEnabled_Success(t *testing.T) {
	f := createTestTokenService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tokenID := uuid.New()
	existing := &entity.DeviceToken{
		ID:                   tokenID,
		OwnerID:              ownerID,
		NotificationsEnabled: true,
	}

	f.tokenRepo.EXPECT().
		FindTokenByID(ctx, tokenID).
		Return(existing, nil)

	f.tokenRepo.EXPECT().
		UpdateNotificationsEnabled(ctx, tokenID, false).
		Return(nil)

	err := f.service.SetNotificationsEnabled(ctx, ownerID, tokenID, false)
	require.NoError(t, err)
}

func TestTokenService_SetNotificationsEnabled_Unauthorized(t *testing.T) {
	f := createTestTokenService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tokenID := uuid.New()
	existing := &entity.DeviceToken{
		ID:      tokenID,
		OwnerID: uuid.New(),
	}

	f.tokenRepo.EXPECT().
		FindTokenByID(ctx, tokenID).
		Return(existing, nil)

	err := f.service.SetNotificationsEnabled(ctx, ownerID, tokenID, false)
	assert.Error(t, err)
	assert.Equal(t, ErrDeviceUnauthorized, err)
}
