package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType enumerates the kinds of in-app inbox notifications.
type NotificationType string

// Inbox notification types produced by the community features.
const (
	NotificationTeamJoinRequest  NotificationType = "team_join_request"
	NotificationTeamJoinApproved NotificationType = "team_join_approved"
	NotificationTeamJoinRejected NotificationType = "team_join_rejected"
	NotificationScheduleUpdate   NotificationType = "schedule_update"
	NotificationChatMessage      NotificationType = "chat_message"
	NotificationRankingUpdate    NotificationType = "ranking_update"
)

// InboxNotification represents a durable in-app inbox entry, distinct from an
// ephemeral push alert. It is append-only from the pipeline's point of view;
// only the UI marks entries read.
type InboxNotification struct {
	ID          uuid.UUID        `json:"id"`               // The Global Unique Identifier (GUID) for the entry.
	RecipientID uuid.UUID        `json:"recipient_id"`     // The ID of the member this entry is addressed to.
	Type        NotificationType `json:"type"`             // The kind of domain event that produced this entry.
	Message     string           `json:"message"`          // Human-readable text.
	Link        string           `json:"link,omitempty"`   // Optional deep-link target consumed by the client.
	Screen      string           `json:"screen,omitempty"` // Optional client screen name for navigation.
	ReadAt      *time.Time       `json:"read_at"`          // When the recipient read the entry, if ever.
	CreatedAt   time.Time        `json:"created_at"`       // Timestamp of when this entry was created.
}
