package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	mockService "bloodlink/internal/mocks/service"
	mockUsecase "bloodlink/internal/mocks/usecase"
	"bloodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBloodRequestHandlerWithMocks(t *testing.T) (*BloodRequestHandler, *mockUsecase.MockBloodRequestUsecase, *mockService.MockQRCodeService) {
	t.Helper()

	uc := mockUsecase.NewMockBloodRequestUsecase(t)
	qr := mockService.NewMockQRCodeService(t)

	return NewBloodRequestHandler(BloodRequestHandlerParams{
		BloodRequestUC: uc,
		QRCodeSvc:      qr,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), uc, qr
}

func sampleRequest(id uuid.UUID) *entity.BloodRequest {
	return &entity.BloodRequest{
		ID:           id,
		RequesterID:  uuid.New(),
		BloodType:    entity.BloodTypeONegative,
		Units:        2,
		Urgency:      entity.UrgencyCritical,
		HospitalName: "Mount Sinai",
		Coordinates:  &entity.Coordinates{Lat: 40.7128, Lng: -74.0060},
		Status:       entity.RequestStatusActive,
		CreatedAt:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestBloodRequestHandler_Submit(t *testing.T) {
	h, uc, _ := newBloodRequestHandlerWithMocks(t)
	userID := uuid.New()
	requestID := uuid.New()

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/blood-requests", map[string]any{
		"blood_type":    "O-",
		"units":         2,
		"urgency":       "Critical",
		"hospital_name": "Mount Sinai",
		"coordinates":   map[string]float64{"lat": 40.7128, "lng": -74.0060},
	})
	asCaller(c, userID, entity.RolePatient)

	uc.EXPECT().
		SubmitBloodRequest(mock.Anything, entity.Caller{UserID: userID, Roles: entity.Roles{entity.RolePatient}}, mock.MatchedBy(func(in *usecase.SubmitBloodRequestInput) bool {
			return in.BloodType == "O-" && in.Units == 2 && in.Urgency == "Critical" &&
				in.Coordinates != nil && in.Coordinates.Lat == 40.7128 && in.Coordinates.Lng == -74.0060
		})).
		Return(&usecase.SubmitResult{RequestID: requestID, NotifiedDonors: 3}, nil)

	require.NoError(t, h.SubmitBloodRequest(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	env := decode[usecase.SubmitResult](t, rec)
	assert.Equal(t, requestID, env.Data.RequestID)
	assert.Equal(t, 3, env.Data.NotifiedDonors)
}

func TestBloodRequestHandler_Submit_RejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body any
		code string
	}{
		{name: "malformed json", body: `{"blood_type":`, code: "INVALID_INPUT"},
		{name: "missing blood type", body: map[string]any{"units": 1}, code: "VALIDATION_FAILED"},
		{name: "unknown blood type", body: map[string]any{"blood_type": "C+", "units": 1}, code: "VALIDATION_FAILED"},
		{name: "zero units", body: map[string]any{"blood_type": "A+", "units": 0}, code: "VALIDATION_FAILED"},
		{name: "unknown urgency", body: map[string]any{"blood_type": "A+", "units": 1, "urgency": "Someday"}, code: "VALIDATION_FAILED"},
		{name: "latitude out of range", body: map[string]any{"blood_type": "A+", "units": 1, "coordinates": map[string]float64{"lat": 91, "lng": 0}}, code: "VALIDATION_FAILED"},
		{name: "longitude missing", body: map[string]any{"blood_type": "A+", "units": 1, "coordinates": map[string]float64{"lat": 10}}, code: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newBloodRequestHandlerWithMocks(t)
			c, rec := newTestContext(t, http.MethodPost, "/api/v1/blood-requests", tt.body)
			asCaller(c, uuid.New(), entity.RoleClinic)

			require.NoError(t, h.SubmitBloodRequest(c))
			requireErrorCode(t, rec, http.StatusBadRequest, tt.code)
		})
	}
}

func TestBloodRequestHandler_Submit_StoreFailureIsPropagated(t *testing.T) {
	h, uc, _ := newBloodRequestHandlerWithMocks(t)
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/blood-requests", map[string]any{"blood_type": "B+", "units": 1})
	asCaller(c, uuid.New(), entity.RolePatient)

	uc.EXPECT().SubmitBloodRequest(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewStoreExecuteError(errors.New("disk full"), "save blood request"))

	err := h.SubmitBloodRequest(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_FAILED", appErr.ErrorCode())
}

func TestBloodRequestHandler_Submit_WithoutCaller(t *testing.T) {
	h, _, _ := newBloodRequestHandlerWithMocks(t)
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/blood-requests", map[string]any{"blood_type": "B+", "units": 1})

	require.NoError(t, h.SubmitBloodRequest(c))
	requireErrorCode(t, rec, http.StatusUnauthorized, "MISSING_TOKEN")
}

func TestBloodRequestHandler_GetRequest(t *testing.T) {
	requestID := uuid.New()

	tests := []struct {
		name       string
		param      string
		setup      func(uc *mockUsecase.MockBloodRequestUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid id",
			param:      "not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name:  "not found",
			param: requestID.String(),
			setup: func(uc *mockUsecase.MockBloodRequestUsecase) {
				uc.EXPECT().GetRequest(mock.Anything, requestID).Return(nil, domainerrors.ErrBloodRequestNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "BLOOD_REQUEST_NOT_FOUND",
		},
		{
			name:  "found",
			param: requestID.String(),
			setup: func(uc *mockUsecase.MockBloodRequestUsecase) {
				uc.EXPECT().GetRequest(mock.Anything, requestID).Return(sampleRequest(requestID), nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc, _ := newBloodRequestHandlerWithMocks(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			c, rec := newTestContext(t, http.MethodGet, "/", nil)
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			require.NoError(t, h.GetRequest(c))
			if tt.wantCode != "" {
				requireErrorCode(t, rec, tt.wantStatus, tt.wantCode)

				return
			}

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode[entity.BloodRequest](t, rec)
			assert.Equal(t, requestID, env.Data.ID)
			assert.Equal(t, entity.RequestStatusActive, env.Data.Status)
		})
	}
}

func TestBloodRequestHandler_AcceptRequest(t *testing.T) {
	donorID := uuid.New()
	requestID := uuid.New()

	t.Run("accepted", func(t *testing.T) {
		h, uc, _ := newBloodRequestHandlerWithMocks(t)
		uc.EXPECT().AcceptRequest(mock.Anything, requestID, donorID).Return(&usecase.AcceptResult{
			Success:   true,
			DonorInfo: &usecase.DonorContact{ID: donorID, Name: "Maya", Phone: "555-0101", BloodType: entity.BloodTypeONegative},
		}, nil)

		c, rec := newTestContext(t, http.MethodPost, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(requestID.String())
		asCaller(c, donorID, entity.RoleDonor)

		require.NoError(t, h.AcceptRequest(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decode[usecase.AcceptResult](t, rec)
		assert.True(t, env.Data.Success)
		require.NotNil(t, env.Data.DonorInfo)
		assert.Equal(t, "Maya", env.Data.DonorInfo.Name)
	})

	t.Run("already accepted", func(t *testing.T) {
		h, uc, _ := newBloodRequestHandlerWithMocks(t)
		uc.EXPECT().AcceptRequest(mock.Anything, requestID, donorID).Return(nil, domainerrors.ErrRequestNotActive.WithDetails("status is Accepted"))

		c, rec := newTestContext(t, http.MethodPost, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(requestID.String())
		asCaller(c, donorID, entity.RoleDonor)

		require.NoError(t, h.AcceptRequest(c))
		requireErrorCode(t, rec, http.StatusConflict, "INVALID_STATE")
	})
}

func TestBloodRequestHandler_CancelRequest_Forbidden(t *testing.T) {
	h, uc, _ := newBloodRequestHandlerWithMocks(t)
	callerID := uuid.New()
	requestID := uuid.New()
	caller := entity.Caller{UserID: callerID, Roles: entity.Roles{entity.RoleClinic}}

	uc.EXPECT().CancelRequest(mock.Anything, caller, requestID).Return(nil, domainerrors.ErrForbidden.WithDetails("only the requester can cancel"))

	c, rec := newTestContext(t, http.MethodPost, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	asCaller(c, callerID, entity.RoleClinic)

	require.NoError(t, h.CancelRequest(c))
	requireErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")

	env := decode[json.RawMessage](t, rec)
	assert.Nil(t, env.Error.Details)
}

func TestBloodRequestHandler_NearbyRequests(t *testing.T) {
	donorID := uuid.New()

	t.Run("passes radius", func(t *testing.T) {
		h, uc, _ := newBloodRequestHandlerWithMocks(t)
		request := sampleRequest(uuid.New())
		uc.EXPECT().NearbyRequests(mock.Anything, donorID, 25.0).Return([]*usecase.NearbyRequest{{Request: request, DistanceKm: 4.2}}, nil)

		c, rec := newTestContext(t, http.MethodGet, "/?radius_km=25", nil)
		asCaller(c, donorID, entity.RoleDonor)

		require.NoError(t, h.NearbyRequests(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decode[[]usecase.NearbyRequest](t, rec)
		require.Len(t, env.Data, 1)
		assert.Equal(t, 4.2, env.Data[0].DistanceKm)
	})

	t.Run("rejects non-numeric radius", func(t *testing.T) {
		h, _, _ := newBloodRequestHandlerWithMocks(t)
		c, rec := newTestContext(t, http.MethodGet, "/?radius_km=far", nil)
		asCaller(c, donorID, entity.RoleDonor)

		require.NoError(t, h.NearbyRequests(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("donor without location", func(t *testing.T) {
		h, uc, _ := newBloodRequestHandlerWithMocks(t)
		uc.EXPECT().NearbyRequests(mock.Anything, donorID, 0.0).Return(nil, domainerrors.ErrDonorLocationUnknown)

		c, rec := newTestContext(t, http.MethodGet, "/", nil)
		asCaller(c, donorID, entity.RoleDonor)

		require.NoError(t, h.NearbyRequests(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func candidateListFixture(requestID uuid.UUID) *usecase.CandidateList {
	near := &entity.DonorProfile{
		ID:          uuid.New(),
		Name:        "Maya",
		Phone:       "555-0199",
		BloodType:   entity.BloodTypeONegative,
		IsAvailable: true,
		Coordinates: &entity.Coordinates{Lat: 40.7306, Lng: -73.9866},
		PushToken:   "fcm-token-maya",
	}
	unplaced := &entity.DonorProfile{ID: uuid.New(), Name: "Lena", BloodType: entity.BloodTypeONegative, IsAvailable: true}

	return &usecase.CandidateList{
		Request:  sampleRequest(requestID),
		RadiusKm: 15,
		Candidates: []*usecase.DonorCandidate{
			usecase.NewDonorCandidate(entity.MatchCandidate{Donor: near, DistanceKm: 2.2}),
			usecase.NewDonorCandidate(entity.MatchCandidate{Donor: unplaced, DistanceKm: 6.4, Estimated: true}),
		},
	}
}

func TestBloodRequestHandler_FindCandidates_JSON(t *testing.T) {
	h, uc, _ := newBloodRequestHandlerWithMocks(t)
	requestID := uuid.New()
	uc.EXPECT().FindCandidates(mock.Anything, requestID, 0.0).Return(candidateListFixture(requestID), nil)

	c, rec := newTestContext(t, http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	require.NoError(t, h.FindCandidates(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decode[usecase.CandidateList](t, rec)
	assert.Equal(t, 15.0, env.Data.RadiusKm)
	require.Len(t, env.Data.Candidates, 2)
	assert.Equal(t, "Maya", env.Data.Candidates[0].Name)
	assert.Equal(t, 2.2, env.Data.Candidates[0].DistanceKm)
	assert.True(t, env.Data.Candidates[1].Estimated)

	body := rec.Body.String()
	assert.NotContains(t, body, "push_token")
	assert.NotContains(t, body, "fcm-token-maya")
	assert.NotContains(t, body, "555-0199")
}

func TestBloodRequestHandler_FindCandidates_GeoJSON(t *testing.T) {
	h, uc, _ := newBloodRequestHandlerWithMocks(t)
	requestID := uuid.New()
	uc.EXPECT().FindCandidates(mock.Anything, requestID, 10.0).Return(candidateListFixture(requestID), nil)

	c, rec := newTestContext(t, http.MethodGet, "/?format=geojson&radius_km=10", nil)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	require.NoError(t, h.FindCandidates(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimeGeoJSON, rec.Header().Get(echo.HeaderContentType))

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			ID       string `json:"id"`
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))

	assert.Equal(t, "FeatureCollection", fc.Type)
	// origin plus the located donor; the estimated one has no position
	require.Len(t, fc.Features, 2)

	origin := fc.Features[0]
	assert.Equal(t, requestID.String(), origin.ID)
	assert.Equal(t, "Point", origin.Geometry.Type)
	assert.Equal(t, []float64{-74.0060, 40.7128}, origin.Geometry.Coordinates)
	assert.Equal(t, "request", origin.Properties["kind"])

	donor := fc.Features[1]
	assert.Equal(t, "donor", donor.Properties["kind"])
	assert.Equal(t, 2.2, donor.Properties["distance_km"])
	assert.Equal(t, []float64{-73.9866, 40.7306}, donor.Geometry.Coordinates)
}

func TestBloodRequestHandler_FindCandidates_UnknownFormat(t *testing.T) {
	h, _, _ := newBloodRequestHandlerWithMocks(t)
	c, rec := newTestContext(t, http.MethodGet, "/?format=kml", nil)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, h.FindCandidates(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
}

func TestBloodRequestHandler_GenerateShareQR(t *testing.T) {
	requestID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	t.Run("renders png", func(t *testing.T) {
		h, uc, qr := newBloodRequestHandlerWithMocks(t)
		uc.EXPECT().GetRequest(mock.Anything, requestID).Return(sampleRequest(requestID), nil)
		qr.EXPECT().GenerateRequestQR(requestID).Return(png, nil)

		c, rec := newTestContext(t, http.MethodGet, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(requestID.String())

		require.NoError(t, h.GenerateShareQR(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), requestID.String())
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("unknown request", func(t *testing.T) {
		h, uc, _ := newBloodRequestHandlerWithMocks(t)
		uc.EXPECT().GetRequest(mock.Anything, requestID).Return(nil, domainerrors.ErrBloodRequestNotFound)

		c, rec := newTestContext(t, http.MethodGet, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(requestID.String())

		require.NoError(t, h.GenerateShareQR(c))
		requireErrorCode(t, rec, http.StatusNotFound, "BLOOD_REQUEST_NOT_FOUND")
	})
}

func TestBloodRequestHandler_ResolveShareQR(t *testing.T) {
	requestID := uuid.New()
	link := "https://bloodlink.example/requests/" + requestID.String()

	t.Run("resolves scanned link", func(t *testing.T) {
		h, uc, qr := newBloodRequestHandlerWithMocks(t)
		qr.EXPECT().ParseRequestQR(link).Return(requestID, nil)
		uc.EXPECT().GetRequest(mock.Anything, requestID).Return(sampleRequest(requestID), nil)

		c, rec := newTestContext(t, http.MethodPost, "/", map[string]string{"qr_data": link})

		require.NoError(t, h.ResolveShareQR(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decode[entity.BloodRequest](t, rec)
		assert.Equal(t, requestID, env.Data.ID)
	})

	t.Run("foreign link", func(t *testing.T) {
		h, _, qr := newBloodRequestHandlerWithMocks(t)
		qr.EXPECT().ParseRequestQR("https://elsewhere.example/x").Return(uuid.Nil, errors.New("QR code does not belong to bloodlink.example"))

		c, rec := newTestContext(t, http.MethodPost, "/", map[string]string{"qr_data": "https://elsewhere.example/x"})

		require.NoError(t, h.ResolveShareQR(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_QR_CODE")
	})

	t.Run("missing data", func(t *testing.T) {
		h, _, _ := newBloodRequestHandlerWithMocks(t)
		c, rec := newTestContext(t, http.MethodPost, "/", map[string]string{})

		require.NoError(t, h.ResolveShareQR(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("request no longer stored", func(t *testing.T) {
		h, uc, qr := newBloodRequestHandlerWithMocks(t)
		qr.EXPECT().ParseRequestQR(link).Return(requestID, nil)
		uc.EXPECT().GetRequest(mock.Anything, requestID).Return(nil, domainerrors.ErrBloodRequestNotFound)

		c, rec := newTestContext(t, http.MethodPost, "/", map[string]string{"qr_data": link})

		require.NoError(t, h.ResolveShareQR(c))
		requireErrorCode(t, rec, http.StatusNotFound, "BLOOD_REQUEST_NOT_FOUND")
	})
}
