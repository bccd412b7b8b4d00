package service

import (
	"context"
	"errors"
)

// ErrInvalidPushToken is returned when the push provider reports the device token as unregistered.
var ErrInvalidPushToken = errors.New("invalid push token")

// PushService defines the interface for push notification services
type PushService interface {
	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
