package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevotionPost represents a single devotion entry posted by a member. Each
// post counts exactly once toward its author's weekly activity, regardless
// of content.
type DevotionPost struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the post.
	AuthorID   uuid.UUID `json:"author_id"`   // The ID of the member who posted.
	AuthorName string    `json:"author_name"` // Display name at posting time, denormalized for ranking.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when the post was created.
}
