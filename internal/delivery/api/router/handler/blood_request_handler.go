package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"bloodlink/internal/delivery/api/middleware"
	"bloodlink/internal/delivery/api/response"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

const (
	formatGeoJSON   = "geojson"
	mimeGeoJSON     = "application/geo+json"
	featureRequest  = "request"
	featureDonor    = "donor"
	propKind        = "kind"
	propDistanceKm  = "distance_km"
	propBloodType   = "blood_type"
	propEstimated   = "estimated"
	propRequestID   = "request_id"
	propUrgency     = "urgency"
	propRadiusKm    = "radius_km"
	propDonorName   = "name"
	propHospital    = "hospital_name"
	propUnitsNeeded = "units"
)

// BloodRequestHandlerParams holds dependencies for BloodRequestHandler, injected by Fx.
type BloodRequestHandlerParams struct {
	fx.In

	BloodRequestUC usecase.BloodRequestUsecase
	QRCodeSvc      service.QRCodeService
	Logger         *slog.Logger
}

// BloodRequestHandler holds dependencies for blood request handlers
type BloodRequestHandler struct {
	bloodRequestUC usecase.BloodRequestUsecase
	qrCodeSvc      service.QRCodeService
	logger         *slog.Logger
}

// NewBloodRequestHandler is the constructor for BloodRequestHandler
func NewBloodRequestHandler(params BloodRequestHandlerParams) *BloodRequestHandler {
	return &BloodRequestHandler{
		bloodRequestUC: params.BloodRequestUC,
		qrCodeSvc:      params.QRCodeSvc,
		logger:         params.Logger,
	}
}

// SubmitBloodRequestRequest represents the request body for submitting a blood request
type SubmitBloodRequestRequest struct {
	BloodType     string              `json:"blood_type" validate:"required,blood_type"`
	Units         int                 `json:"units" validate:"required,gt=0,lte=100"`
	Urgency       string              `json:"urgency,omitempty" validate:"omitempty,urgency"`
	HospitalName  string              `json:"hospital_name" validate:"max=200"`
	ContactNumber string              `json:"contact_number,omitempty" validate:"max=32"`
	Notes         string              `json:"notes,omitempty" validate:"max=1000"`
	Coordinates   *CoordinatesRequest `json:"coordinates,omitempty"`
}

// SubmitBloodRequest handles creating a blood request and notifying matching donors
func (h *BloodRequestHandler) SubmitBloodRequest(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var req SubmitBloodRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blood request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.bloodRequestUC.SubmitBloodRequest(c.Request().Context(), caller, &usecase.SubmitBloodRequestInput{
		BloodType:     req.BloodType,
		Units:         req.Units,
		Urgency:       req.Urgency,
		HospitalName:  req.HospitalName,
		ContactNumber: req.ContactNumber,
		Notes:         req.Notes,
		Coordinates:   req.Coordinates.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// ListMyRequests handles listing the caller's own blood requests
func (h *BloodRequestHandler) ListMyRequests(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	requests, err := h.bloodRequestUC.ListRequestsByRequester(c.Request().Context(), caller.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// GetRequest handles retrieving a single blood request
func (h *BloodRequestHandler) GetRequest(c echo.Context) error {
	requestID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid blood request ID")
	}

	request, err := h.bloodRequestUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// AcceptRequest handles a donor accepting an active blood request
func (h *BloodRequestHandler) AcceptRequest(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	requestID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid blood request ID")
	}

	result, err := h.bloodRequestUC.AcceptRequest(c.Request().Context(), requestID, caller.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// CancelRequest handles the requester withdrawing an active blood request
func (h *BloodRequestHandler) CancelRequest(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	requestID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid blood request ID")
	}

	request, err := h.bloodRequestUC.CancelRequest(c.Request().Context(), caller, requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// NearbyRequests handles listing active requests the calling donor can serve
func (h *BloodRequestHandler) NearbyRequests(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	radiusKm, err := radiusParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "radius_km must be a number")
	}

	nearby, err := h.bloodRequestUC.NearbyRequests(c.Request().Context(), caller.UserID, radiusKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby)
}

// FindCandidates handles re-running donor matching for a stored request.
// With ?format=geojson the result is a FeatureCollection instead of the JSON envelope.
func (h *BloodRequestHandler) FindCandidates(c echo.Context) error {
	requestID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid blood request ID")
	}

	radiusKm, err := radiusParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "radius_km must be a number")
	}

	format := c.QueryParam("format")
	if format != "" && format != "json" && format != formatGeoJSON {
		return response.BadRequest(c, "INVALID_INPUT", "format must be json or geojson")
	}

	candidates, err := h.bloodRequestUC.FindCandidates(c.Request().Context(), requestID, radiusKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if format != formatGeoJSON {
		return response.Success(c, http.StatusOK, candidates)
	}

	body, err := candidateFeatures(candidates).MarshalJSON()
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}

// candidateFeatures renders the request origin and each located candidate as points.
// Candidates placed by the pseudo-near fallback have no position and are left out of the map.
func candidateFeatures(list *usecase.CandidateList) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	request := list.Request
	if request.Coordinates != nil {
		origin := geojson.NewFeature(orb.Point{request.Coordinates.Lng, request.Coordinates.Lat})
		origin.ID = request.ID.String()
		origin.Properties[propKind] = featureRequest
		origin.Properties[propBloodType] = request.BloodType.String()
		origin.Properties[propUrgency] = request.Urgency.String()
		origin.Properties[propUnitsNeeded] = request.Units
		origin.Properties[propHospital] = request.HospitalName
		origin.Properties[propRadiusKm] = list.RadiusKm
		fc.Append(origin)
	}

	for _, candidate := range list.Candidates {
		if candidate == nil || candidate.Coordinates == nil {
			continue
		}

		feature := geojson.NewFeature(orb.Point{candidate.Coordinates.Lng, candidate.Coordinates.Lat})
		feature.ID = candidate.ID.String()
		feature.Properties[propKind] = featureDonor
		feature.Properties[propDonorName] = candidate.Name
		feature.Properties[propBloodType] = candidate.BloodType.String()
		feature.Properties[propDistanceKm] = candidate.DistanceKm
		feature.Properties[propEstimated] = candidate.Estimated
		feature.Properties[propRequestID] = request.ID.String()
		fc.Append(feature)
	}

	return fc
}

// GenerateShareQR handles rendering a share QR code for a blood request
func (h *BloodRequestHandler) GenerateShareQR(c echo.Context) error {
	requestID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid blood request ID")
	}

	ctx := c.Request().Context()
	if _, err := h.bloodRequestUC.GetRequest(ctx, requestID); err != nil {
		return response.HandleAppError(c, err)
	}

	qrCode, err := h.qrCodeSvc.GenerateRequestQR(requestID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to generate share QR",
			slog.String("blood_request_id", requestID.String()),
			slog.Any("error", err),
		)

		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=blood-request-%s.png", requestID))

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// ResolveShareQRRequest carries the text decoded from a scanned share code
type ResolveShareQRRequest struct {
	QRData string `json:"qr_data" validate:"required,max=2048"`
}

// ResolveShareQR handles looking up the blood request behind a scanned share code
func (h *BloodRequestHandler) ResolveShareQR(c echo.Context) error {
	var req ResolveShareQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR code input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	requestID, err := h.qrCodeSvc.ParseRequestQR(req.QRData)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Rejected share QR", slog.Any("error", err))

		return response.BadRequest(c, "INVALID_QR_CODE", "QR code does not reference a blood request")
	}

	request, err := h.bloodRequestUC.GetRequest(ctx, requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}
