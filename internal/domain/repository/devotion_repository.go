package repository

import (
	"context"
	"time"

	"steeple/internal/domain/entity"
)

// DevotionRepository defines the read interface over devotion posts used by
// the weekly aggregator. Post creation belongs to the community service.
type DevotionRepository interface {
	// FindPostsBetween retrieves posts whose creation time falls within
	// [from, to], ordered by created_at ascending so that ranking
	// tie-breaks are deterministic.
	FindPostsBetween(ctx context.Context, from, to time.Time) ([]*entity.DevotionPost, error)
}
