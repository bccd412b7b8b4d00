// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bloodlink/internal/delivery/api/middleware"
	"bloodlink/internal/delivery/api/router/handler"
	"bloodlink/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BloodRequestHandler *handler.BloodRequestHandler
	DonorHandler        *handler.DonorHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	bloodRequestHandler *handler.BloodRequestHandler
	donorHandler        *handler.DonorHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		bloodRequestHandler: params.BloodRequestHandler,
		donorHandler:        params.DonorHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	requesterOnly := r.authMiddleware.RequireRole(entity.RolePatient, entity.RoleClinic)
	donorOnly := r.authMiddleware.RequireRole(entity.RoleDonor)
	clinicOnly := r.authMiddleware.RequireRole(entity.RoleClinic)

	requestsGroup := apiV1.Group("/blood-requests")
	{
		requestsGroup.POST("", r.bloodRequestHandler.SubmitBloodRequest, requesterOnly)
		requestsGroup.GET("", r.bloodRequestHandler.ListMyRequests, r.authMiddleware.RequireUser, requesterOnly)
		requestsGroup.GET("/nearby", r.bloodRequestHandler.NearbyRequests, donorOnly)
		requestsGroup.POST("/scan", r.bloodRequestHandler.ResolveShareQR)
		requestsGroup.GET("/:id", r.bloodRequestHandler.GetRequest)
		requestsGroup.POST("/:id/accept", r.bloodRequestHandler.AcceptRequest, donorOnly)
		requestsGroup.POST("/:id/cancel", r.bloodRequestHandler.CancelRequest, r.authMiddleware.RequireUser)
		requestsGroup.GET("/:id/candidates", r.bloodRequestHandler.FindCandidates, clinicOnly)
		requestsGroup.GET("/:id/qr", r.bloodRequestHandler.GenerateShareQR)
	}

	donorsGroup := apiV1.Group("/donors/me")
	donorsGroup.Use(donorOnly)
	{
		donorsGroup.GET("", r.donorHandler.GetMyProfile)
		donorsGroup.PUT("", r.donorHandler.UpsertMyProfile)
		donorsGroup.PUT("/availability", r.donorHandler.SetAvailability)
	}

	notificationsGroup := apiV1.Group("/notifications")
	notificationsGroup.Use(r.authMiddleware.RequireUser)
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}
}
