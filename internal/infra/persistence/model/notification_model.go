package model

import (
	"time"

	"github.com/google/uuid"
)

// InboxNotificationModel is the GORM-specific struct for the 'notifications'
// table. Rows are append-only from the pipeline's point of view; only ReadAt
// is ever updated, by the recipient.
type InboxNotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(50);not null"`
	Message     string    `gorm:"type:text;not null"`
	Link        string    `gorm:"type:varchar(512)"`
	Screen      string    `gorm:"type:varchar(100)"`
	ReadAt      *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (InboxNotificationModel) TableName() string {
	return "notifications"
}
