package usecase

import (
	"context"
)

// PruneReport summarizes one token sanitation run.
type PruneReport struct {
	Scanned        int `json:"scanned"`         // Token records examined.
	Duplicates     int `json:"duplicates"`      // Redundant records deleted.
	OwnersRepaired int `json:"owners_repaired"` // Members whose device-id set was rewritten.
	Failures       int `json:"failures"`        // Owner groups skipped because their repair failed.
}

// MaintenanceUsecase defines the interface for token hygiene use cases.
type MaintenanceUsecase interface {
	// PruneDuplicateTokens scans all token records in first-seen order,
	// keeps the earliest record per token value, deletes the rest, and
	// rewrites every scanned member's device-id set from their surviving
	// records, so stale device ids are repaired even where nothing was
	// deleted. A failure in one member's group is counted and skipped;
	// the run continues with the next group.
	PruneDuplicateTokens(ctx context.Context) (*PruneReport, error)
}
