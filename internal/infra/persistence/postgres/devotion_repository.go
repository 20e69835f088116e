package postgres

import (
	"context"
	"time"

	"steeple/internal/domain/entity"
	"steeple/internal/domain/repository"
	"steeple/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// devotionRepository implements the repository.DevotionRepository interface.
type devotionRepository struct {
	db *gorm.DB
}

// NewDevotionRepository is the constructor for devotionRepository.
func NewDevotionRepository(db *gorm.DB) repository.DevotionRepository {
	return &devotionRepository{
		db: db,
	}
}

// FindPostsBetween retrieves posts created within [from, to] in creation order.
func (repo *devotionRepository) FindPostsBetween(ctx context.Context, from, to time.Time) ([]*entity.DevotionPost, error) {
	var postModels []*model.DevotionPostModel

	if err := repo.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", from, to).
		Order("created_at ASC, id ASC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devotion posts in range")
	}

	posts := make([]*entity.DevotionPost, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, &entity.DevotionPost{
			ID:         postM.ID,
			AuthorID:   postM.AuthorID,
			AuthorName: postM.AuthorName,
			CreatedAt:  postM.CreatedAt,
		})
	}

	return posts, nil
}
