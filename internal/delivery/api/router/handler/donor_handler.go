package handler

import (
	"log/slog"
	"net/http"

	"bloodlink/internal/delivery/api/middleware"
	"bloodlink/internal/delivery/api/response"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DonorHandlerParams holds dependencies for DonorHandler, injected by Fx.
type DonorHandlerParams struct {
	fx.In

	DonorUC usecase.DonorUsecase
	Logger  *slog.Logger
}

// DonorHandler holds dependencies for donor profile handlers
type DonorHandler struct {
	donorUC usecase.DonorUsecase
	logger  *slog.Logger
}

// NewDonorHandler is the constructor for DonorHandler
func NewDonorHandler(params DonorHandlerParams) *DonorHandler {
	return &DonorHandler{
		donorUC: params.DonorUC,
		logger:  params.Logger,
	}
}

// UpsertDonorProfileRequest represents the request body for creating or updating the caller's donor profile
type UpsertDonorProfileRequest struct {
	Name        string              `json:"name" validate:"required,max=100"`
	Phone       string              `json:"phone" validate:"required,max=32"`
	BloodType   string              `json:"blood_type" validate:"required,blood_type"`
	IsAvailable *bool               `json:"is_available,omitempty"`
	Coordinates *CoordinatesRequest `json:"coordinates,omitempty"`
	PushToken   *string             `json:"push_token,omitempty" validate:"omitempty,max=4096"`
}

// SetAvailabilityRequest represents the request body for toggling donor availability
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// GetMyProfile handles retrieving the caller's donor profile
func (h *DonorHandler) GetMyProfile(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	donor, err := h.donorUC.GetDonorProfile(c.Request().Context(), caller.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donor)
}

// UpsertMyProfile handles creating or updating the caller's donor profile
func (h *DonorHandler) UpsertMyProfile(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var req UpsertDonorProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donor profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	donor, err := h.donorUC.UpsertDonorProfile(c.Request().Context(), caller.UserID, &usecase.UpsertDonorProfileInput{
		Name:        req.Name,
		Phone:       req.Phone,
		BloodType:   req.BloodType,
		IsAvailable: req.IsAvailable,
		Coordinates: req.Coordinates.toEntity(),
		PushToken:   req.PushToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donor)
}

// SetAvailability handles toggling whether the caller can be matched
func (h *DonorHandler) SetAvailability(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var req SetAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	donor, err := h.donorUC.SetAvailability(c.Request().Context(), caller.UserID, *req.IsAvailable)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donor)
}
