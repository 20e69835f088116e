package impl

import (
	"context"
	"fmt"
	"log/slog"

	"steeple/internal/domain/entity"
	"steeple/internal/domain/repository"
	"steeple/internal/domain/service"
	"steeple/internal/usecase"
)

type dispatchService struct {
	gateway          service.PushGateway
	tokenRepo        repository.TokenRepository
	notificationRepo repository.NotificationRepository
	txManager        repository.TransactionManager
	batchSize        int
	logger           *slog.Logger
}

// NewDispatchService creates a new dispatch service instance.
// batchSize caps how many tokens go into one gateway request; it is clamped
// to the gateway's own limit.
func NewDispatchService(
	gateway service.PushGateway,
	tokenRepo repository.TokenRepository,
	notificationRepo repository.NotificationRepository,
	txManager repository.TransactionManager,
	batchSize int,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	if batchSize <= 0 || batchSize > gateway.MaxBatchSize() {
		batchSize = gateway.MaxBatchSize()
	}

	return &dispatchService{
		gateway:          gateway,
		tokenRepo:        tokenRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		batchSize:        batchSize,
		logger:           logger,
	}
}

// SendPush delivers a push alert to the given tokens in gateway-sized batches.
// A transport failure in one batch is logged and skipped so the remaining
// batches still go out. Tokens the gateway reports as unregistered are
// retired before the call returns.
func (s *dispatchService) SendPush(ctx context.Context, tokens []string, content *usecase.PushContent) (*usecase.DispatchResult, error) {
	result := &usecase.DispatchResult{}
	if len(tokens) == 0 {
		return result, nil
	}

	invalidTokens := make([]string, 0)

	for start := 0; start < len(tokens); start += s.batchSize {
		end := min(start+s.batchSize, len(tokens))
		batch := tokens[start:end]

		successCount, failureCount, invalid, err := s.gateway.SendBatchNotification(ctx, batch, content.Title, content.Body, content.Data)
		if err != nil {
			result.FailedBatches++
			s.logger.Error("Push batch failed",
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.String("error", err.Error()),
			)

			continue
		}

		result.SuccessCount += successCount
		result.FailureCount += failureCount
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		result.InvalidTokens = s.retireInvalidTokens(ctx, invalidTokens)
	}

	s.logger.Info("Push dispatch completed",
		slog.Int("tokens", len(tokens)),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
		slog.Int("invalid", result.InvalidTokens),
		slog.Int("failed_batches", result.FailedBatches),
	)

	return result, nil
}

// BroadcastPush delivers a push alert to every device with notifications enabled.
func (s *dispatchService) BroadcastPush(ctx context.Context, content *usecase.PushContent) (*usecase.DispatchResult, error) {
	enabled, err := s.tokenRepo.FindEnabledTokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find enabled tokens: %w", err)
	}

	tokens := make([]string, 0, len(enabled))
	for _, token := range enabled {
		tokens = append(tokens, token.Token)
	}

	return s.SendPush(ctx, tokens, content)
}

// SendInApp appends a durable inbox entry for a member.
func (s *dispatchService) SendInApp(ctx context.Context, notification *entity.InboxNotification) error {
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to create inbox notification: %w", err)
	}

	return nil
}

// retireInvalidTokens deletes every record matching an unregistered token
// value and drops the device identity from the owner's set when no other
// record still carries it. Each record is retired in its own transaction; a
// failure on one token does not block the rest. Returns how many records
// were retired.
func (s *dispatchService) retireInvalidTokens(ctx context.Context, invalidTokens []string) int {
	retired := 0

	for _, value := range invalidTokens {
		records, err := s.tokenRepo.FindTokensByValue(ctx, value)
		if err != nil {
			s.logger.Error("Failed to look up invalid token",
				slog.String("error", err.Error()),
			)

			continue
		}

		for _, record := range records {
			if err := s.retireRecord(ctx, record); err != nil {
				s.logger.Error("Failed to retire invalid token",
					slog.String("token_id", record.ID.String()),
					slog.String("member_id", record.OwnerID.String()),
					slog.String("error", err.Error()),
				)

				continue
			}
			retired++
		}
	}

	return retired
}

func (s *dispatchService) retireRecord(ctx context.Context, record *entity.DeviceToken) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()

		if err := tokenRepo.DeleteToken(ctx, record.ID); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}

		if record.DeviceID == "" {
			return nil
		}

		remaining, err := tokenRepo.FindTokensByOwner(ctx, record.OwnerID)
		if err != nil {
			return fmt.Errorf("failed to find remaining tokens: %w", err)
		}
		for _, other := range remaining {
			if other.DeviceID == record.DeviceID {
				return nil
			}
		}

		if err := repoFactory.NewMemberRepository().RemoveDeviceID(ctx, record.OwnerID, record.DeviceID); err != nil {
			return fmt.Errorf("failed to remove device ID from member: %w", err)
		}

		return nil
	})
}
