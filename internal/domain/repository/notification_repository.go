package repository

import (
	"context"
	"errors"

	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the persistence operations for per-user notifications.
type NotificationRepository interface {
	// Save creates or replaces a notification.
	Save(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification owned by userID.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error)

	// FindByUser retrieves every notification addressed to userID.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)
}
