package service

import (
	"context"
	"time"
)

// JobEvent represents a scheduled maintenance or aggregation job to be
// processed by the notifier worker.
type JobEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	Job         string    `json:"job"`                  // constants.JobWeeklyRanking or constants.JobTokenPrune
	ScheduledAt time.Time `json:"scheduled_at"`         // When the trigger fired
}

// EventPublisher defines the interface for publishing job events to a
// message queue.
type EventPublisher interface {
	// PublishJobEvent publishes a job event for async processing by the worker.
	PublishJobEvent(ctx context.Context, event *JobEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
