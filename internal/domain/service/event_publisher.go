package service

import (
	"context"
)

// NotificationEventKind matches the notification type the event carries.
type NotificationEventKind string

const (
	EventKindBloodRequest    NotificationEventKind = "blood_request"
	EventKindRequestAccepted NotificationEventKind = "request_accepted"
)

// NotificationDelivery is a single stored notification to push to a user's device
type NotificationDelivery struct {
	NotificationID string `json:"notification_id"`
	UserID         string `json:"user_id"`
	Title          string `json:"title"`
	Body           string `json:"body"`
}

// NotificationEvent represents an event to be processed by the push worker
type NotificationEvent struct {
	RequestID      string                 `json:"request_id,omitempty"` // For distributed tracing
	BloodRequestID string                 `json:"blood_request_id"`
	Kind           NotificationEventKind  `json:"kind"`
	Deliveries     []NotificationDelivery `json:"deliveries"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
