package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloodlink/config"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/service"
	mockService "bloodlink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T, allowAnonymous bool) (*AuthMiddleware, *mockService.MockTokenService) {
	t.Helper()

	tokenSvc := mockService.NewMockTokenService(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenSvc: tokenSvc,
		Config:   &config.Config{Auth: &config.AuthConfig{AllowAnonymous: allowAnonymous}},
	}), tokenSvc
}

func serveAuth(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, *entity.Caller) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Caller
	_ = mw(func(c echo.Context) error {
		caller, ok := GetCaller(c)
		if ok {
			seen = &caller
		}

		return c.NoContent(http.StatusNoContent)
	})(c)

	return rec, seen
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		m, tokenSvc := newAuthMiddleware(t, false)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"clinic"}}, nil)

		rec, caller := serveAuth(m.Authenticate, "Bearer good")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, caller)
		assert.Equal(t, userID, caller.UserID)
		assert.True(t, caller.Roles.Contains(entity.RoleClinic))
		assert.False(t, caller.Anonymous)
	})

	t.Run("missing header without anonymous access", func(t *testing.T) {
		m, _ := newAuthMiddleware(t, false)

		rec, caller := serveAuth(m.Authenticate, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", errorCode(t, rec))
		assert.Nil(t, caller)
	})

	t.Run("missing header in demo mode", func(t *testing.T) {
		m, _ := newAuthMiddleware(t, true)

		rec, caller := serveAuth(m.Authenticate, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, caller)
		assert.True(t, caller.Anonymous)
		assert.Equal(t, uuid.Nil, caller.UserID)
		assert.True(t, caller.Roles.Contains(entity.RolePatient))
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m, _ := newAuthMiddleware(t, true)

		rec, _ := serveAuth(m.Authenticate, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))
	})

	t.Run("rejected token", func(t *testing.T) {
		m, tokenSvc := newAuthMiddleware(t, true)
		tokenSvc.EXPECT().ValidateToken("stale").Return(nil, errors.New("token is expired"))

		rec, caller := serveAuth(m.Authenticate, "Bearer stale")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))
		assert.Nil(t, caller)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, _ := newAuthMiddleware(t, true)

	tests := []struct {
		name       string
		caller     *entity.Caller
		roles      []entity.Role
		wantStatus int
		wantCode   string
	}{
		{
			name:       "holds one of the roles",
			caller:     &entity.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleClinic}},
			roles:      []entity.Role{entity.RolePatient, entity.RoleClinic},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "wrong role",
			caller:     &entity.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RolePatient}},
			roles:      []entity.Role{entity.RoleDonor},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "no caller",
			roles:      []entity.Role{entity.RoleDonor},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tt.caller != nil {
				c.Set("caller", *tt.caller)
			}

			_ = m.RequireRole(tt.roles...)(func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			})(c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			}
		})
	}
}

func TestAuthMiddleware_RequireUser(t *testing.T) {
	m, _ := newAuthMiddleware(t, true)

	run := func(caller entity.Caller) int {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.Set("caller", caller)

		_ = m.RequireUser(func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		})(c)

		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, run(entity.AnonymousCaller()))
	assert.Equal(t, http.StatusNoContent, run(entity.Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RolePatient}}))
}
