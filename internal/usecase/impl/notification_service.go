package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// veryCloseKm is the distance under which a donor is told the request is "very close".
const veryCloseKm = 1.0

type notificationService struct {
	notificationRepo repository.NotificationRepository
	eventPublisher   service.EventPublisher
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for the notification service
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	EventPublisher   service.EventPublisher
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &notificationService{
		notificationRepo: params.NotificationRepo,
		eventPublisher:   params.EventPublisher,
		logger:           logger,
		now:              time.Now,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifyMatches stores a donor alert per candidate. Records are append-only and
// never deduplicated, so calling it twice for the same request notifies twice.
func (srv *notificationService) NotifyMatches(
	ctx context.Context,
	request *entity.BloodRequest,
	candidates []entity.MatchCandidate,
) ([]*entity.Notification, error) {
	created := make([]*entity.Notification, 0, len(candidates))
	if len(candidates) == 0 {
		return created, nil
	}

	now := srv.now()
	var lastErr error
	for _, candidate := range candidates {
		notification := newDonorAlert(request, candidate, now)
		if err := srv.notificationRepo.Save(ctx, notification); err != nil {
			srv.log(ctx).Warn("Failed to store donor notification",
				slog.Any("error", err),
				slog.String("blood_request_id", request.ID.String()),
				slog.String("donor_id", candidate.Donor.ID.String()),
			)
			lastErr = err

			continue
		}
		created = append(created, notification)
	}

	if len(created) == 0 {
		return created, errors.Wrapf(lastErr, "failed to store any of %d donor notifications", len(candidates))
	}

	if failed := len(candidates) - len(created); failed > 0 {
		srv.log(ctx).Warn("Some donor notifications were not stored",
			slog.String("blood_request_id", request.ID.String()),
			slog.Int("created", len(created)),
			slog.Int("failed", failed),
		)
	}

	srv.publish(ctx, request, service.EventKindBloodRequest, created)

	return created, nil
}

// NotifyAcceptance stores the single request_accepted notification for the requester
func (srv *notificationService) NotifyAcceptance(
	ctx context.Context,
	request *entity.BloodRequest,
	donor *entity.DonorProfile,
) (*entity.Notification, error) {
	message := fmt.Sprintf("%s (%s) accepted your request for %s at %s.",
		donorName(donor), donor.BloodType, unitsPhrase(request), hospitalOrDefault(request.HospitalName))
	notification := &entity.Notification{
		ID:             uuid.New(),
		UserID:         request.RequesterID,
		Type:           entity.NotificationTypeRequestAccepted,
		Title:          "Your blood request was accepted",
		Message:        message,
		BloodRequestID: request.ID,
		Urgency:        request.Urgency,
		CreatedAt:      srv.now(),
	}

	if err := srv.notificationRepo.Save(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to store acceptance notification")
	}

	srv.publish(ctx, request, service.EventKindRequestAccepted, []*entity.Notification{notification})

	return notification, nil
}

// ListNotifications returns the user's notifications, newest first
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	result := make([]*entity.Notification, 0, len(notifications))
	for _, n := range notifications {
		if unreadOnly && n.Read {
			continue
		}
		result = append(result, n)
	}

	slices.SortStableFunc(result, func(a, b *entity.Notification) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return result, nil
}

// publish hands the stored notifications to the push worker. Failures only affect
// push delivery, the inbox records already exist.
func (srv *notificationService) publish(
	ctx context.Context,
	request *entity.BloodRequest,
	kind service.NotificationEventKind,
	notifications []*entity.Notification,
) {
	if srv.eventPublisher == nil || len(notifications) == 0 {
		return
	}

	deliveries := make([]service.NotificationDelivery, 0, len(notifications))
	for _, n := range notifications {
		deliveries = append(deliveries, service.NotificationDelivery{
			NotificationID: n.ID.String(),
			UserID:         n.UserID.String(),
			Title:          n.Title,
			Body:           n.Message,
		})
	}

	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		BloodRequestID: request.ID.String(),
		Kind:           kind,
		Deliveries:     deliveries,
	}

	if err := srv.eventPublisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish notification event",
			slog.Any("error", err),
			slog.String("blood_request_id", request.ID.String()),
			slog.String("kind", string(kind)),
		)
	}
}

func newDonorAlert(request *entity.BloodRequest, candidate entity.MatchCandidate, now time.Time) *entity.Notification {
	distance := candidate.DistanceKm
	message := fmt.Sprintf("%s needs %s of %s blood. The request is %s.",
		hospitalOrDefault(request.HospitalName), unitsPhrase(request), request.BloodType, distancePhrase(distance))

	return &entity.Notification{
		ID:             uuid.New(),
		UserID:         candidate.Donor.ID,
		Type:           entity.NotificationTypeBloodRequest,
		Title:          fmt.Sprintf("%s Blood Needed - %s", request.BloodType, request.Urgency),
		Message:        message,
		BloodRequestID: request.ID,
		DistanceKm:     &distance,
		Urgency:        request.Urgency,
		CreatedAt:      now,
	}
}

func distancePhrase(distanceKm float64) string {
	if distanceKm < veryCloseKm {
		return "very close"
	}

	return fmt.Sprintf("%gkm away", distanceKm)
}

func unitsPhrase(request *entity.BloodRequest) string {
	if request.Units == 1 {
		return "1 unit"
	}

	return fmt.Sprintf("%d units", request.Units)
}

func hospitalOrDefault(name string) string {
	if name == "" {
		return "A nearby hospital"
	}

	return name
}

func donorName(donor *entity.DonorProfile) string {
	if donor.Name == "" {
		return "A donor"
	}

	return donor.Name
}
