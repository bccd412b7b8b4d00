package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	mockUsecase "bloodlink/internal/mocks/usecase"
	"bloodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDonorHandlerWithMock(t *testing.T) (*DonorHandler, *mockUsecase.MockDonorUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockDonorUsecase(t)

	return NewDonorHandler(DonorHandlerParams{
		DonorUC: uc,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), uc
}

func TestDonorHandler_GetMyProfile(t *testing.T) {
	donorID := uuid.New()

	t.Run("found", func(t *testing.T) {
		h, uc := newDonorHandlerWithMock(t)
		uc.EXPECT().GetDonorProfile(mock.Anything, donorID).Return(&entity.DonorProfile{
			ID:          donorID,
			Name:        "Maya",
			BloodType:   entity.BloodTypeAPositive,
			IsAvailable: true,
		}, nil)

		c, rec := newTestContext(t, http.MethodGet, "/api/v1/donors/me", nil)
		asCaller(c, donorID, entity.RoleDonor)

		require.NoError(t, h.GetMyProfile(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decode[entity.DonorProfile](t, rec)
		assert.Equal(t, "Maya", env.Data.Name)
		assert.Equal(t, entity.BloodTypeAPositive, env.Data.BloodType)
	})

	t.Run("no profile yet", func(t *testing.T) {
		h, uc := newDonorHandlerWithMock(t)
		uc.EXPECT().GetDonorProfile(mock.Anything, donorID).Return(nil, domainerrors.ErrDonorNotFound)

		c, rec := newTestContext(t, http.MethodGet, "/api/v1/donors/me", nil)
		asCaller(c, donorID, entity.RoleDonor)

		require.NoError(t, h.GetMyProfile(c))
		requireErrorCode(t, rec, http.StatusNotFound, "DONOR_NOT_FOUND")
	})
}

func TestDonorHandler_UpsertMyProfile(t *testing.T) {
	donorID := uuid.New()

	tests := []struct {
		name       string
		body       any
		setup      func(uc *mockUsecase.MockDonorUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "stores profile with location",
			body: map[string]any{
				"name":         "Maya",
				"phone":        "555-0101",
				"blood_type":   "O-",
				"is_available": false,
				"coordinates":  map[string]float64{"lat": 40.73, "lng": -73.99},
			},
			setup: func(uc *mockUsecase.MockDonorUsecase) {
				uc.EXPECT().
					UpsertDonorProfile(mock.Anything, donorID, mock.MatchedBy(func(in *usecase.UpsertDonorProfileInput) bool {
						return in.Name == "Maya" && in.BloodType == "O-" &&
							in.IsAvailable != nil && !*in.IsAvailable &&
							in.Coordinates != nil && in.Coordinates.Lat == 40.73 &&
							in.PushToken == nil
					})).
					Return(&entity.DonorProfile{ID: donorID, Name: "Maya", BloodType: entity.BloodTypeONegative}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing phone",
			body:       map[string]any{"name": "Maya", "blood_type": "O-"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "invalid blood type",
			body:       map[string]any{"name": "Maya", "phone": "555-0101", "blood_type": "Z"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed body",
			body:       "{",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "demo fixture is read-only",
			body: map[string]any{"name": "Maya", "phone": "555-0101", "blood_type": "O-"},
			setup: func(uc *mockUsecase.MockDonorUsecase) {
				uc.EXPECT().UpsertDonorProfile(mock.Anything, donorID, mock.Anything).Return(nil, domainerrors.ErrDonorProfileReadOnly)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "DONOR_PROFILE_READ_ONLY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newDonorHandlerWithMock(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			c, rec := newTestContext(t, http.MethodPut, "/api/v1/donors/me", tt.body)
			asCaller(c, donorID, entity.RoleDonor)

			require.NoError(t, h.UpsertMyProfile(c))
			if tt.wantCode != "" {
				requireErrorCode(t, rec, tt.wantStatus, tt.wantCode)

				return
			}

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDonorHandler_SetAvailability(t *testing.T) {
	donorID := uuid.New()

	t.Run("toggles off", func(t *testing.T) {
		h, uc := newDonorHandlerWithMock(t)
		uc.EXPECT().SetAvailability(mock.Anything, donorID, false).Return(&entity.DonorProfile{ID: donorID}, nil)

		c, rec := newTestContext(t, http.MethodPut, "/api/v1/donors/me/availability", map[string]any{"is_available": false})
		asCaller(c, donorID, entity.RoleDonor)

		require.NoError(t, h.SetAvailability(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decode[entity.DonorProfile](t, rec)
		assert.False(t, env.Data.IsAvailable)
	})

	t.Run("flag is required", func(t *testing.T) {
		h, _ := newDonorHandlerWithMock(t)

		c, rec := newTestContext(t, http.MethodPut, "/api/v1/donors/me/availability", map[string]any{})
		asCaller(c, donorID, entity.RoleDonor)

		require.NoError(t, h.SetAvailability(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}
