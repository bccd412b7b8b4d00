package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloodlink/config"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	mockRepo "bloodlink/internal/mocks/repository"
	mockService "bloodlink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandlerWithMocks(t *testing.T) (*PushHandler, *mockRepo.MockDonorRepository, *mockService.MockPushService) {
	t.Helper()

	donorRepo := mockRepo.NewMockDonorRepository(t)
	pushSvc := mockService.NewMockPushService(t)

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}

	return NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		DonorRepo: donorRepo,
		PushSvc:   pushSvc,
	}), donorRepo, pushSvc
}

func pushRequest(t *testing.T, event *service.NotificationEvent, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/local/subscriptions/notification-events-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return rawPushRequest(body)
}

func rawPushRequest(body []byte) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func matchEvent(bloodRequestID uuid.UUID, deliveries ...service.NotificationDelivery) *service.NotificationEvent {
	return &service.NotificationEvent{
		RequestID:      "req-42",
		BloodRequestID: bloodRequestID.String(),
		Kind:           service.EventKindBloodRequest,
		Deliveries:     deliveries,
	}
}

func TestPushHandler_SendsToDonorsWithTokens(t *testing.T) {
	h, donorRepo, pushSvc := newPushHandlerWithMocks(t)
	bloodRequestID := uuid.New()

	withToken := &entity.DonorProfile{ID: uuid.New(), PushToken: "token-a"}
	withoutToken := &entity.DonorProfile{ID: uuid.New()}
	notificationID := uuid.NewString()

	donorRepo.EXPECT().FindByID(mock.Anything, withToken.ID).Return(withToken, nil)
	donorRepo.EXPECT().FindByID(mock.Anything, withoutToken.ID).Return(withoutToken, nil)

	pushSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-a", "Urgent: O- blood needed", "Mount Sinai needs 2 units", map[string]string{
			"notification_id":  notificationID,
			"blood_request_id": bloodRequestID.String(),
			"kind":             "blood_request",
		}).
		Return(nil).Once()

	c, rec := pushRequest(t, matchEvent(bloodRequestID,
		service.NotificationDelivery{NotificationID: notificationID, UserID: withToken.ID.String(), Title: "Urgent: O- blood needed", Body: "Mount Sinai needs 2 units"},
		service.NotificationDelivery{NotificationID: uuid.NewString(), UserID: withoutToken.ID.String(), Title: "t", Body: "b"},
	), nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ClearsUnregisteredToken(t *testing.T) {
	tests := []struct {
		name    string
		saveErr error
	}{
		{name: "store accepts the update"},
		{name: "read-only fixture", saveErr: repository.ErrDonorRepositoryReadOnly},
		{name: "store failure is only logged", saveErr: errors.New("timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, donorRepo, pushSvc := newPushHandlerWithMocks(t)
			donor := &entity.DonorProfile{ID: uuid.New(), Name: "Maya", PushToken: "stale-token"}

			donorRepo.EXPECT().FindByID(mock.Anything, donor.ID).Return(donor, nil)
			pushSvc.EXPECT().SendSingleNotification(mock.Anything, "stale-token", mock.Anything, mock.Anything, mock.Anything).
				Return(errors.Join(service.ErrInvalidPushToken, errors.New("registration-token-not-registered")))
			donorRepo.EXPECT().
				Save(mock.Anything, mock.MatchedBy(func(d *entity.DonorProfile) bool {
					return d.ID == donor.ID && d.PushToken == "" && d.Name == "Maya"
				})).
				Return(tt.saveErr)

			c, rec := pushRequest(t, matchEvent(uuid.New(),
				service.NotificationDelivery{NotificationID: uuid.NewString(), UserID: donor.ID.String()},
			), nil)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_SendFailureIsAcknowledged(t *testing.T) {
	h, donorRepo, pushSvc := newPushHandlerWithMocks(t)
	first := &entity.DonorProfile{ID: uuid.New(), PushToken: "token-a"}
	second := &entity.DonorProfile{ID: uuid.New(), PushToken: "token-b"}

	donorRepo.EXPECT().FindByID(mock.Anything, first.ID).Return(first, nil)
	donorRepo.EXPECT().FindByID(mock.Anything, second.ID).Return(second, nil)
	pushSvc.EXPECT().SendSingleNotification(mock.Anything, "token-a", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))
	pushSvc.EXPECT().SendSingleNotification(mock.Anything, "token-b", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	c, rec := pushRequest(t, matchEvent(uuid.New(),
		service.NotificationDelivery{NotificationID: uuid.NewString(), UserID: first.ID.String()},
		service.NotificationDelivery{NotificationID: uuid.NewString(), UserID: second.ID.String()},
	), nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RequesterWithoutDonorProfile(t *testing.T) {
	h, donorRepo, _ := newPushHandlerWithMocks(t)
	requesterID := uuid.New()

	donorRepo.EXPECT().FindByID(mock.Anything, requesterID).Return(nil, repository.ErrDonorNotFound)

	event := matchEvent(uuid.New(), service.NotificationDelivery{NotificationID: uuid.NewString(), UserID: requesterID.String()})
	event.Kind = service.EventKindRequestAccepted

	c, rec := pushRequest(t, event, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StoreOutageIsRetried(t *testing.T) {
	h, donorRepo, _ := newPushHandlerWithMocks(t)
	donorID := uuid.New()

	// nothing is pushed when a recipient cannot be resolved
	donorRepo.EXPECT().FindByID(mock.Anything, donorID).Return(nil, errors.New("connection refused"))

	c, rec := pushRequest(t, matchEvent(uuid.New(),
		service.NotificationDelivery{NotificationID: uuid.NewString(), UserID: donorID.String()},
		service.NotificationDelivery{NotificationID: uuid.NewString(), UserID: uuid.NewString()},
	), nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name       string
		body       []byte
		wantStatus int
	}{
		{name: "not json", body: []byte("{"), wantStatus: http.StatusBadRequest},
		{name: "data not base64", body: []byte(`{"message":{"data":"***"}}`), wantStatus: http.StatusBadRequest},
		{
			name:       "payload not an event",
			body:       []byte(`{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`),
			wantStatus: http.StatusBadRequest,
		},
		{
			// acknowledged so Pub/Sub stops redelivering it
			name:       "invalid blood request id",
			body:       []byte(`{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"blood_request_id":"nope","kind":"blood_request"}`)) + `"}}`),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newPushHandlerWithMocks(t)
			c, rec := rawPushRequest(tt.body)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _, _ := newPushHandlerWithMocks(t)
	event := &service.NotificationEvent{RequestID: "from-event"}

	var withAttr PubSubMessage
	withAttr.Message.Attributes = map[string]string{"request_id": "from-attr"}

	assert.Equal(t, "from-attr", h.extractRequestID(t.Context(), &withAttr, event))
	assert.Equal(t, "from-event", h.extractRequestID(t.Context(), &PubSubMessage{}, event))

	generated := h.extractRequestID(t.Context(), &PubSubMessage{}, &service.NotificationEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		env      string
		want     bool
	}{
		{name: "google production", provider: constants.PubSubProviderGoogle, env: constants.EnvProduction, want: true},
		{name: "google develop", provider: constants.PubSubProviderGoogle, env: constants.EnvDevelop},
		{name: "local production", provider: constants.PubSubProviderLocal, env: constants.EnvProduction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}

func TestVerifyPubSubToken_RejectsMissingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}
