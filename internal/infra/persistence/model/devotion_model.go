package model

import (
	"time"

	"github.com/google/uuid"
)

// DevotionPostModel is the GORM-specific struct for the 'devotion_posts'
// table. The aggregator only reads this table; writes come from the
// community service.
type DevotionPostModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorName string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DevotionPostModel) TableName() string {
	return "devotion_posts"
}
