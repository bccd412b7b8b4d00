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

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	BloodRequestUC usecase.BloodRequestUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification inbox handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	bloodRequestUC usecase.BloodRequestUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		bloodRequestUC: params.BloodRequestUC,
		logger:         params.Logger,
	}
}

// ListNotifications handles listing the caller's notifications, newest first. ?unread=true filters read ones out.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var unreadOnly bool
	if err := echo.QueryParamsBinder(c).Bool("unread", &unreadOnly).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "unread must be true or false")
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), caller.UserID, unreadOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// MarkRead handles marking one of the caller's notifications as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	notificationID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.bloodRequestUC.MarkNotificationRead(c.Request().Context(), caller.UserID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}
