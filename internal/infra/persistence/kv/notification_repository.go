package kv

import (
	"context"
	"log/slog"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationRepository implements the repository.NotificationRepository interface.
// Keys embed the owner, so lookups for another user's notification miss.
type notificationRepository struct {
	store  repository.KeyValueStore
	logger *slog.Logger
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(params RepositoryParams) repository.NotificationRepository {
	return &notificationRepository{
		store:  params.Store,
		logger: loggerOrDefault(params.Logger),
	}
}

func notificationUserPrefix(userID uuid.UUID) string {
	return notificationPrefix + userID.String() + ":"
}

func notificationKey(userID, id uuid.UUID) string {
	return notificationUserPrefix(userID) + id.String()
}

// Save creates or replaces a notification.
func (repo *notificationRepository) Save(ctx context.Context, notification *entity.Notification) error {
	return putJSON(ctx, repo.store, notificationKey(notification.UserID, notification.ID), notification)
}

// FindByID retrieves a notification owned by userID.
func (repo *notificationRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error) {
	notification, err := getJSON[entity.Notification](ctx, repo.store, notificationKey(userID, id))
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return notification, nil
}

// FindByUser retrieves every notification addressed to userID.
func (repo *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	return listJSON[entity.Notification](ctx, repo.store, repo.logger, notificationUserPrefix(userID))
}
