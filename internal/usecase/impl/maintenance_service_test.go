package impl

import (
	"context"
	"io"
	"log/slog"
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

// maintenanceServiceFixtures holds all test dependencies for maintenance service tests.
type maintenanceServiceFixtures struct {
	service    usecase.MaintenanceUsecase
	tokenRepo  *mockRepo.MockTokenRepository
	memberRepo *mockRepo.MockMemberRepository
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
}

func createTestMaintenanceService(t *testing.T) maintenanceServiceFixtures {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	memberRepo := mockRepo.NewMockMemberRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewMaintenanceService(tokenRepo, txManager, logger)

	return maintenanceServiceFixtures{
		service:    service,
		tokenRepo:  tokenRepo,
		memberRepo: memberRepo,
		txManager:  txManager,
		factory:    factory,
	}
}

func (f maintenanceServiceFixtures) expectTransactions(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func TestMaintenanceService_PruneDuplicateTokens_NoDuplicates(t *testing.T) {
	f := createTestMaintenanceService(t)

	ctx := context.Background()
	ownerA := uuid.New()
	ownerB := uuid.New()
	tokens := []*entity.DeviceToken{
		{ID: uuid.New(), OwnerID: ownerA, Token: "token-a", DeviceID: "device-a"},
		{ID: uuid.New(), OwnerID: ownerB, Token: "token-b", DeviceID: "device-b"},
	}

	f.tokenRepo.EXPECT().
		FindAllTokensOrdered(ctx).
		Return(tokens, nil)

	f.expectTransactions(ctx)
	f.factory.EXPECT().NewTokenRepository().Return(f.tokenRepo)
	f.factory.EXPECT().NewMemberRepository().Return(f.memberRepo)

	// Nothing to delete, but every scanned member's set is still rewritten.
	f.tokenRepo.EXPECT().
		FindTokensByOwner(ctx, ownerA).
		Return([]*entity.DeviceToken{tokens[0]}, nil)

	f.tokenRepo.EXPECT().
		FindTokensByOwner(ctx, ownerB).
		Return([]*entity.DeviceToken{tokens[1]}, nil)

	f.memberRepo.EXPECT().
		ReplaceDeviceIDs(ctx, ownerA, []string{"device-a"}).
		Return(nil)

	f.memberRepo.EXPECT().
		ReplaceDeviceIDs(ctx, ownerB, []string{"device-b"}).
		Return(nil)

	report, err := f.service.PruneDuplicateTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Zero(t, report.Duplicates)
	assert.Equal(t, 2, report.OwnersRepaired)
	assert.Zero(t, report.Failures)
}

// A member whose set carries an identity no surviving record backs gets it
// dropped even when none of their rows were duplicates.
func TestMaintenanceService_PruneDuplicateTokens_DanglingDeviceIDRepaired(t *testing.T) {
	f := createTestMaintenanceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tokens := []*entity.DeviceToken{
		{ID: uuid.New(), OwnerID: ownerID, Token: "token-a", DeviceID: "device-1"},
	}

	f.tokenRepo.EXPECT().
		FindAllTokensOrdered(ctx).
		Return(tokens, nil)

	f.expectTransactions(ctx)
	f.factory.EXPECT().NewTokenRepository().Return(f.tokenRepo)
	f.factory.EXPECT().NewMemberRepository().Return(f.memberRepo)

	f.tokenRepo.EXPECT().
		FindTokensByOwner(ctx, ownerID).
		Return(tokens, nil)

	// The overwrite keeps only device-1; any stale identity in the stored
	// set disappears with it.
	f.memberRepo.EXPECT().
		ReplaceDeviceIDs(ctx, ownerID, []string{"device-1"}).
		Return(nil)

	report, err := f.service.PruneDuplicateTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Zero(t, report.Duplicates)
	assert.Equal(t, 1, report.OwnersRepaired)
	assert.Zero(t, report.Failures)
}

func TestMaintenanceService_PruneDuplicateTokens_FirstSeenWins(t *testing.T) {
	f := createTestMaintenanceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	keeperID := uuid.New()
	dupID := uuid.New()

	// Records arrive in creation order: the first token-a row survives.
	tokens := []*entity.DeviceToken{
		{ID: keeperID, OwnerID: ownerID, Token: "token-a", DeviceID: "device-1"},
		{ID: dupID, OwnerID: ownerID, Token: "token-a", DeviceID: "device-2"},
	}

	f.tokenRepo.EXPECT().
		FindAllTokensOrdered(ctx).
		Return(tokens, nil)

	f.expectTransactions(ctx)
	f.factory.EXPECT().NewTokenRepository().Return(f.tokenRepo)
	f.factory.EXPECT().NewMemberRepository().Return(f.memberRepo)

	f.tokenRepo.EXPECT().
		DeleteToken(ctx, dupID).
		Return(nil)

	f.tokenRepo.EXPECT().
		FindTokensByOwner(ctx, ownerID).
		Return([]*entity.DeviceToken{tokens[0]}, nil)

	// The set is rebuilt from the surviving record only; device-2 drops out.
	f.memberRepo.EXPECT().
		ReplaceDeviceIDs(ctx, ownerID, []string{"device-1"}).
		Return(nil)

	report, err := f.service.PruneDuplicateTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 1, report.OwnersRepaired)
	assert.Zero(t, report.Failures)
}

func TestMaintenanceService_PruneDuplicateTokens_FailureContinues(t *testing.T) {
	f := createTestMaintenanceService(t)

	ctx := context.Background()
	ownerA := uuid.New()
	ownerB := uuid.New()
	dupA := uuid.New()
	dupB := uuid.New()

	tokens := []*entity.DeviceToken{
		{ID: uuid.New(), OwnerID: ownerA, Token: "token-a", DeviceID: "device-a"},
		{ID: dupA, OwnerID: ownerA, Token: "token-a", DeviceID: "device-a"},
		{ID: uuid.New(), OwnerID: ownerB, Token: "token-b", DeviceID: "device-b"},
		{ID: dupB, OwnerID: ownerB, Token: "token-b", DeviceID: "device-b"},
	}

	f.tokenRepo.EXPECT().
		FindAllTokensOrdered(ctx).
		Return(tokens, nil)

	f.expectTransactions(ctx)
	f.factory.EXPECT().NewTokenRepository().Return(f.tokenRepo)
	f.factory.EXPECT().NewMemberRepository().Return(f.memberRepo)

	// Owner A's group fails on delete; owner B's group still goes through.
	f.tokenRepo.EXPECT().
		DeleteToken(ctx, dupA).
		Return(errors.New("database error"))

	f.tokenRepo.EXPECT().
		DeleteToken(ctx, dupB).
		Return(nil)

	f.tokenRepo.EXPECT().
		FindTokensByOwner(ctx, ownerB).
		Return([]*entity.DeviceToken{tokens[2]}, nil)

	f.memberRepo.EXPECT().
		ReplaceDeviceIDs(ctx, ownerB, []string{"device-b"}).
		Return(nil)

	report, err := f.service.PruneDuplicateTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Scanned)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 1, report.OwnersRepaired)
	assert.Equal(t, 1, report.Failures)
}

func TestMaintenanceService_PruneDuplicateTokens_ListError(t *testing.T) {
	f := createTestMaintenanceService(t)

	ctx := context.Background()

	f.tokenRepo.EXPECT().
		FindAllTokensOrdered(ctx).
		Return(nil, errors.New("database error"))

	report, err := f.service.PruneDuplicateTokens(ctx)
	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to list tokens")
}

// Duplicates spread across owners repair each owner independently.
func TestMaintenanceService_PruneDuplicateTokens_CrossOwnerDuplicate(t *testing.T) {
	f := createTestMaintenanceService(t)

	ctx := context.Background()
	ownerA := uuid.New()
	ownerB := uuid.New()
	dupID := uuid.New()

	// The same token value was registered by two members; owner A saw it
	// first, so owner B's record is the duplicate.
	tokens := []*entity.DeviceToken{
		{ID: uuid.New(), OwnerID: ownerA, Token: "token-shared", DeviceID: "device-a"},
		{ID: dupID, OwnerID: ownerB, Token: "token-shared", DeviceID: "device-b"},
	}

	f.tokenRepo.EXPECT().
		FindAllTokensOrdered(ctx).
		Return(tokens, nil)

	f.expectTransactions(ctx)
	f.factory.EXPECT().NewTokenRepository().Return(f.tokenRepo)
	f.factory.EXPECT().NewMemberRepository().Return(f.memberRepo)

	f.tokenRepo.EXPECT().
		DeleteToken(ctx, dupID).
		Return(nil)

	f.tokenRepo.EXPECT().
		FindTokensByOwner(ctx, ownerA).
		Return([]*entity.DeviceToken{tokens[0]}, nil)

	f.tokenRepo.EXPECT().
		FindTokensByOwner(ctx, ownerB).
		Return([]*entity.DeviceToken{}, nil)

	f.memberRepo.EXPECT().
		ReplaceDeviceIDs(ctx, ownerA, []string{"device-a"}).
		Return(nil)

	f.memberRepo.EXPECT().
		ReplaceDeviceIDs(ctx, ownerB, []string{}).
		Return(nil)

	report, err := f.service.PruneDuplicateTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 2, report.OwnersRepaired)
}
