package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"steeple/internal/domain/entity"
	"steeple/internal/domain/repository"
	"steeple/internal/usecase"

	"github.com/google/uuid"
)

type maintenanceService struct {
	tokenRepo repository.TokenRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewMaintenanceService creates a new maintenance service instance
func NewMaintenanceService(tokenRepo repository.TokenRepository, txManager repository.TransactionManager, logger *slog.Logger) usecase.MaintenanceUsecase {
	return &maintenanceService{
		tokenRepo: tokenRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// PruneDuplicateTokens removes redundant records sharing a token value and
// repairs the device-id sets of scanned members. Records are scanned in
// creation order, so the earliest record for each value survives. Every
// owner's set is rewritten from their surviving records, duplicates or not,
// so dangling device ids are dropped even when no row was deleted. One
// member's failed repair is logged and skipped; the run continues.
func (s *maintenanceService) PruneDuplicateTokens(ctx context.Context) (*usecase.PruneReport, error) {
	tokens, err := s.tokenRepo.FindAllTokensOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	report := &usecase.PruneReport{Scanned: len(tokens)}

	// First occurrence of each token value wins; later rows are duplicates.
	seen := make(map[string]struct{}, len(tokens))
	ownersSeen := make(map[uuid.UUID]struct{})
	duplicatesByOwner := make(map[uuid.UUID][]*entity.DeviceToken)
	ownerOrder := make([]uuid.UUID, 0)

	for _, token := range tokens {
		if _, ok := ownersSeen[token.OwnerID]; !ok {
			ownersSeen[token.OwnerID] = struct{}{}
			ownerOrder = append(ownerOrder, token.OwnerID)
		}

		if _, ok := seen[token.Token]; !ok {
			seen[token.Token] = struct{}{}

			continue
		}

		duplicatesByOwner[token.OwnerID] = append(duplicatesByOwner[token.OwnerID], token)
	}

	for _, ownerID := range ownerOrder {
		duplicates := duplicatesByOwner[ownerID]

		if err := s.pruneOwnerGroup(ctx, ownerID, duplicates); err != nil {
			report.Failures++
			s.logger.Error("Failed to prune duplicate tokens for member",
				slog.String("member_id", ownerID.String()),
				slog.Int("duplicates", len(duplicates)),
				slog.String("error", err.Error()),
			)

			continue
		}

		report.Duplicates += len(duplicates)
		report.OwnersRepaired++
	}

	s.logger.Info("Token prune completed",
		slog.Int("scanned", report.Scanned),
		slog.Int("duplicates", report.Duplicates),
		slog.Int("owners_repaired", report.OwnersRepaired),
		slog.Int("failures", report.Failures),
	)

	return report, nil
}

// pruneOwnerGroup deletes one member's duplicate records and rewrites their
// device-id set from the surviving records, all in one transaction.
func (s *maintenanceService) pruneOwnerGroup(ctx context.Context, ownerID uuid.UUID, duplicates []*entity.DeviceToken) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()

		for _, duplicate := range duplicates {
			if err := tokenRepo.DeleteToken(ctx, duplicate.ID); err != nil {
				return fmt.Errorf("failed to delete duplicate token: %w", err)
			}
		}

		// Rebuild the member's device-id set from what survived. This is a
		// full overwrite: identities that no longer back any token are
		// dropped along with the duplicates.
		surviving, err := tokenRepo.FindTokensByOwner(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("failed to find surviving tokens: %w", err)
		}

		deviceIDs := make([]string, 0, len(surviving))
		for _, token := range surviving {
			if token.DeviceID == "" || slices.Contains(deviceIDs, token.DeviceID) {
				continue
			}
			deviceIDs = append(deviceIDs, token.DeviceID)
		}

		if err := repoFactory.NewMemberRepository().ReplaceDeviceIDs(ctx, ownerID, deviceIDs); err != nil {
			return fmt.Errorf("failed to replace member device IDs: %w", err)
		}

		return nil
	})
}
