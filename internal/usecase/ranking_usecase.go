package usecase

import (
	"context"
	"time"

	"steeple/internal/domain/entity"
)

// RankingUsecase defines the interface for the weekly devotion ranking job.
type RankingUsecase interface {
	// RunWeeklyRanking aggregates devotion posts over the Monday-through-
	// Sunday week containing the reference time minus seven days, ranks
	// authors by post count, announces the result as a broadcast push and
	// writes an inbox entry for every ranked participant. When the window
	// holds no posts the run is a no-op and returns nil.
	RunWeeklyRanking(ctx context.Context, now time.Time) (*entity.WeeklyRanking, error)
}
