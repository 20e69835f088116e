package service

import (
	"context"
)

// PushGateway defines the interface for push delivery gateways.
// Implementations exist for the Expo push API and Firebase Cloud Messaging.
type PushGateway interface {
	// SendBatchNotification sends one batch of push notifications.
	// Returns success count, failure count, the subset of tokens the
	// gateway reported as permanently invalid (device no longer
	// registered), and an error for batch-level failures. Invalid tokens
	// are an authoritative "this token is dead" signal; transport errors
	// are not.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// MaxBatchSize returns the largest token batch one request may carry.
	MaxBatchSize() int
}
