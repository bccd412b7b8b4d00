package middleware

import (
	"strings"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/delivery/api/response"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	Config   *config.Config
}

// AuthMiddleware resolves the caller from a bearer access token.
type AuthMiddleware struct {
	tokenSvc       service.TokenService
	allowAnonymous bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:       params.TokenSvc,
		allowAnonymous: params.Config.Auth != nil && params.Config.Auth.AllowAnonymous,
	}
}

// Authenticate validates the access token and stores the caller on the context.
// Without an Authorization header the request proceeds as the anonymous caller when auth.allowAnonymous is set.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			if m.allowAnonymous {
				deliverycontext.SetCaller(c, entity.AnonymousCaller())

				return next(c)
			}

			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetCaller(c, entity.Caller{
			UserID: claims.UserID,
			Roles:  entity.RolesFromStrings(claims.Roles),
		})

		return next(c)
	}
}

// RequireRole allows the request when the caller holds at least one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := deliverycontext.GetCaller(c)
			if !ok {
				return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
			}

			if !caller.Roles.ContainsAny(roles...) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: requires role "+joinRoles(roles))
			}

			return next(c)
		}
	}
}

// RequireUser rejects the anonymous caller.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, ok := deliverycontext.GetCaller(c)
		if !ok || caller.Anonymous {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
		}

		return next(c)
	}
}

// GetCaller returns the caller resolved by Authenticate.
func GetCaller(c echo.Context) (entity.Caller, bool) {
	return deliverycontext.GetCaller(c)
}

func joinRoles(roles []entity.Role) string {
	return strings.Join(entity.Roles(roles).ToStrings(), " or ")
}
