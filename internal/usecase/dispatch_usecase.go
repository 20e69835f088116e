package usecase

import (
	"context"

	"steeple/internal/domain/entity"
)

// PushContent is the rendered alert handed to the push gateway.
type PushContent struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// DispatchResult summarizes one push delivery run across all batches.
type DispatchResult struct {
	SuccessCount  int `json:"success_count"`  // Receipts the gateway accepted.
	FailureCount  int `json:"failure_count"`  // Receipts the gateway rejected.
	InvalidTokens int `json:"invalid_tokens"` // Tokens retired as permanently unregistered.
	FailedBatches int `json:"failed_batches"` // Whole batches lost to transport errors.
}

// DispatchUsecase defines the interface for notification delivery use cases.
type DispatchUsecase interface {
	// SendPush delivers a push alert to the given tokens in gateway-sized
	// batches. A transport failure in one batch does not abort the rest.
	// Tokens the gateway reports as unregistered are deleted and their
	// owners' device-id sets repaired before the call returns.
	SendPush(ctx context.Context, tokens []string, content *PushContent) (*DispatchResult, error)

	// BroadcastPush delivers a push alert to every device that has
	// notifications enabled.
	BroadcastPush(ctx context.Context, content *PushContent) (*DispatchResult, error)

	// SendInApp appends a durable inbox entry for a member. Inbox entries
	// are independent of push delivery: a failed push never loses the
	// in-app record.
	SendInApp(ctx context.Context, notification *entity.InboxNotification) error
}
