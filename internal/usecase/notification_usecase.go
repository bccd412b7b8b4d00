package usecase

import (
	"context"

	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for creating and reading user notifications
type NotificationUsecase interface {
	// NotifyMatches stores one blood_request notification per candidate and returns the ones created.
	// Individual write failures are skipped; an error is returned only when nothing could be stored.
	NotifyMatches(ctx context.Context, request *entity.BloodRequest, candidates []entity.MatchCandidate) ([]*entity.Notification, error)

	// NotifyAcceptance stores the request_accepted notification for the requester
	NotifyAcceptance(ctx context.Context, request *entity.BloodRequest, donor *entity.DonorProfile) (*entity.Notification, error)

	// ListNotifications returns the user's notifications, newest first
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error)
}
