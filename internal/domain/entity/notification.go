package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType distinguishes donor alerts from requester updates.
type NotificationType string

const (
	// NotificationTypeBloodRequest alerts a donor about a matching request.
	NotificationTypeBloodRequest NotificationType = "blood_request"
	// NotificationTypeRequestAccepted tells a requester a donor accepted.
	NotificationTypeRequestAccepted NotificationType = "request_accepted"
)

// Notification is a per-user inbox record.
type Notification struct {
	ID             uuid.UUID        `json:"id"`               // The Global Unique Identifier (GUID) for the notification.
	UserID         uuid.UUID        `json:"user_id"`          // The recipient.
	Type           NotificationType `json:"type"`             // The kind of notification.
	Title          string           `json:"title"`            // Short headline.
	Message        string           `json:"message"`          // Human-readable body.
	BloodRequestID uuid.UUID        `json:"blood_request_id"` // The request this notification is about.
	DistanceKm     *float64         `json:"distance_km"`      // Distance to the request, donor alerts only.
	Urgency        Urgency          `json:"urgency"`          // Copied from the request.
	Read           bool             `json:"read"`             // Whether the user has read it.
	ReadAt         *time.Time       `json:"read_at"`          // When it was first marked read.
	CreatedAt      time.Time        `json:"created_at"`       // Timestamp of when the notification was created.
}

// MarkRead flags the notification as read, keeping the first read timestamp.
func (n *Notification) MarkRead(now time.Time) {
	if n.Read {
		return
	}
	n.Read = true
	n.ReadAt = &now
}
