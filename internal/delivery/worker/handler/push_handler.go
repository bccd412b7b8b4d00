package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// pushTarget is a delivery resolved to the donor holding the device token
type pushTarget struct {
	delivery service.NotificationDelivery
	donor    *entity.DonorProfile
}

// deliveryStats summarizes one event's push attempts
type deliveryStats struct {
	sent          int
	failed        int
	skipped       int
	invalidTokens int
}

// PushHandler delivers stored notifications to donor devices from Pub/Sub push messages
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	donorRepo      repository.DonorRepository
	pushSvc        service.PushService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	DonorRepo repository.DonorRepository
	PushSvc   service.PushService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token, and develop deployments skip the check
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		donorRepo:      params.DonorRepo,
		pushSvc:        params.PushSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse notification event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing notification event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("blood_request_id", event.BloodRequestID),
		slog.String("kind", string(event.Kind)),
		slog.Int("delivery_count", len(event.Deliveries)),
	)

	stats, err := h.processEvent(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process notification event",
			slog.String("blood_request_id", event.BloodRequestID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver; anything else is acknowledged to stop retry loops
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Notification event processed",
		slog.String("blood_request_id", event.BloodRequestID),
		slog.Int("sent", stats.sent),
		slog.Int("failed", stats.failed),
		slog.Int("skipped", stats.skipped),
		slog.Int("invalid_tokens", stats.invalidTokens),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the inbound request
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.NotificationEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent resolves every recipient before sending anything, so a store outage
// is retried without having pushed part of the event.
func (h *PushHandler) processEvent(ctx context.Context, event *service.NotificationEvent) (*deliveryStats, error) {
	if _, err := uuid.Parse(event.BloodRequestID); err != nil {
		return nil, errors.Wrapf(err, "invalid blood_request_id %q", event.BloodRequestID)
	}

	targets, skipped, err := h.resolveTargets(ctx, event.Deliveries)
	if err != nil {
		return nil, err
	}

	stats := &deliveryStats{skipped: skipped}
	for _, target := range targets {
		h.send(ctx, event, target, stats)
	}

	return stats, nil
}

func (h *PushHandler) resolveTargets(ctx context.Context, deliveries []service.NotificationDelivery) ([]pushTarget, int, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	targets := make([]pushTarget, 0, len(deliveries))
	skipped := 0
	for _, delivery := range deliveries {
		userID, err := uuid.Parse(delivery.UserID)
		if err != nil {
			logger.Warn("[Worker] Skipping delivery with invalid user id",
				slog.String("notification_id", delivery.NotificationID),
				slog.String("user_id", delivery.UserID),
			)
			skipped++

			continue
		}

		donor, err := h.donorRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrDonorNotFound) {
			// requesters have no donor profile and therefore no device token
			skipped++

			continue
		}
		if err != nil {
			return nil, 0, newRetryableError(errors.Wrapf(err, "load donor %s", userID))
		}

		if donor.PushToken == "" {
			skipped++

			continue
		}

		targets = append(targets, pushTarget{delivery: delivery, donor: donor})
	}

	return targets, skipped, nil
}

func (h *PushHandler) send(ctx context.Context, event *service.NotificationEvent, target pushTarget, stats *deliveryStats) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	data := map[string]string{
		"notification_id":  target.delivery.NotificationID,
		"blood_request_id": event.BloodRequestID,
		"kind":             string(event.Kind),
	}

	err := h.pushSvc.SendSingleNotification(ctx, target.donor.PushToken, target.delivery.Title, target.delivery.Body, data)
	if err == nil {
		stats.sent++

		return
	}

	stats.failed++
	if !errors.Is(err, service.ErrInvalidPushToken) {
		logger.Warn("[Worker] Failed to send push notification",
			slog.String("notification_id", target.delivery.NotificationID),
			slog.String("donor_id", target.donor.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	stats.invalidTokens++
	h.clearPushToken(ctx, target.donor)
}

// clearPushToken drops a token the provider reported as unregistered
func (h *PushHandler) clearPushToken(ctx context.Context, donor *entity.DonorProfile) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	donor.PushToken = ""
	err := h.donorRepo.Save(ctx, donor)
	switch {
	case err == nil:
		logger.Info("[Worker] Cleared unregistered push token", slog.String("donor_id", donor.ID.String()))
	case errors.Is(err, repository.ErrDonorRepositoryReadOnly):
		logger.Debug("[Worker] Donor fixture is read-only, keeping push token", slog.String("donor_id", donor.ID.String()))
	default:
		logger.Warn("[Worker] Failed to clear push token",
			slog.String("donor_id", donor.ID.String()),
			slog.Any("error", err),
		)
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the push endpoint URL configured on the subscription
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
