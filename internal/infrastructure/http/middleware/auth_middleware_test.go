package middleware

import (
	"context"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/engagement-tracker/errors"
	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
	"github.com/johnquangdev/engagement-tracker/pkg/jwt"
)

type fakeSessions struct {
	tokens map[string]*entities.User
	err    error
}

func (f *fakeSessions) ValidateSession(_ context.Context, token string) (*entities.User, *jwt.Claims, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	user, ok := f.tokens[token]
	if !ok {
		return nil, nil, usecaseErrors.ErrTokenInvalid
	}
	return user, &jwt.Claims{UserID: user.ID, Username: user.Username}, nil
}

func run(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (echo.Context, bool, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return c, called, err
}

func TestEchoAuth(t *testing.T) {
	sessions := &fakeSessions{tokens: map[string]*entities.User{
		"good": {ID: 7, Username: "alice"},
	}}

	t.Run("bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")

		c, called, err := run(t, EchoAuth(sessions), req)
		require.NoError(t, err)
		assert.True(t, called)

		id, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, int64(7), id)
		user, ok := GetUser(c)
		require.True(t, ok)
		assert.Equal(t, "alice", user.Username)
		claims, ok := GetClaims(c)
		require.True(t, ok)
		assert.Equal(t, int64(7), claims.UserID)
	})

	t.Run("cookie fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "good"})

		_, called, err := run(t, EchoAuth(sessions), req)
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, called, err := run(t, EchoAuth(sessions), req)
		assert.False(t, called)
		var appErr errors.AppError
		require.True(t, stdErrors.As(err, &appErr))
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
		assert.Equal(t, errors.ErrorCode_UNAUTHENTICATED, appErr.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad")

		_, called, err := run(t, EchoAuth(sessions), req)
		assert.False(t, called)
		var appErr errors.AppError
		require.True(t, stdErrors.As(err, &appErr))
		assert.Equal(t, errors.ErrorCode_AUTH_INVALID_TOKEN, appErr.Code)
	})

	t.Run("lookup failure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")

		_, _, err := run(t, EchoAuth(&fakeSessions{err: stdErrors.New("redis down")}), req)
		var appErr errors.AppError
		require.True(t, stdErrors.As(err, &appErr))
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	})
}

func TestOptionalAuth(t *testing.T) {
	sessions := &fakeSessions{tokens: map[string]*entities.User{
		"good": {ID: 3, Username: "bob"},
	}}

	t.Run("anonymous", func(t *testing.T) {
		c, called, err := run(t, OptionalAuth(sessions), httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.True(t, called)
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("invalid token continues anonymously", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad")

		c, called, err := run(t, OptionalAuth(sessions), req)
		require.NoError(t, err)
		assert.True(t, called)
		_, ok := GetUser(c)
		assert.False(t, ok)
	})

	t.Run("valid token sets identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "bearer good")

		c, _, err := run(t, OptionalAuth(sessions), req)
		require.NoError(t, err)
		id, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, int64(3), id)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generates uuid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c, _, err := run(t, RequestID(), req)
		require.NoError(t, err)

		id := GetRequestID(c)
		_, parseErr := uuid.Parse(id)
		assert.NoError(t, parseErr)
		assert.Equal(t, id, c.Response().Header().Get(echo.HeaderXRequestID))
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-123")
		c, _, err := run(t, RequestID(), req)
		require.NoError(t, err)
		assert.Equal(t, "req-123", GetRequestID(c))
	})
}
