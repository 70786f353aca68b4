package notification

import (
	"context"
	"time"
)

const (
	EventBookingCreated = "booking.created"
	EventAdminGranted   = "user.admin_granted"
)

// Event is the envelope published for domain changes.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// NotificationService publishes domain events to downstream consumers.
type NotificationService interface {
	// Publish emits an event of eventType partitioned by key.
	Publish(ctx context.Context, eventType, key string, payload interface{}) error
	Close() error
}

// NopNotificationService drops every event. It is used when no broker is configured.
type NopNotificationService struct{}

func (NopNotificationService) Publish(context.Context, string, string, interface{}) error {
	return nil
}

func (NopNotificationService) Close() error { return nil }
