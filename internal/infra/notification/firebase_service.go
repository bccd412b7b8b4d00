// Package notification delivers push notifications to donor devices.
package notification

import (
	"context"
	"log/slog"

	"bloodlink/config"
	"bloodlink/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messageSender is the part of the FCM client the service uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// NewPushService uses Firebase when configured and a log-only sender otherwise.
func NewPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Warn("Firebase not configured, push notifications are only logged")

		return NewLogPushService(logger), nil
	}

	return NewFirebaseService(ctx, cfg.Firebase)
}

// SendSingleNotification sends a push notification to a single device token.
// Unregistered or malformed tokens are reported as service.ErrInvalidPushToken.
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrap(service.ErrInvalidPushToken, err.Error())
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// logPushService records pushes in the log instead of sending them.
type logPushService struct {
	logger *slog.Logger
}

// NewLogPushService creates a push service for local development.
func NewLogPushService(logger *slog.Logger) service.PushService {
	return &logPushService{logger: logger}
}

func (s *logPushService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		return service.ErrInvalidPushToken
	}

	s.logger.InfoContext(ctx, "[LogPush] Notification",
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
