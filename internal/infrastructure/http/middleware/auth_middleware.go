package middleware

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/engagement-tracker/errors"
	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
	"github.com/johnquangdev/engagement-tracker/pkg/jwt"
)

// Echo context keys set by the auth middleware
const (
	UserKey   = "user"
	UserIDKey = "user_id"
	ClaimsKey = "claims"
)

// SessionValidator resolves an access token to its user
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*entities.User, *jwt.Claims, error)
}

// EchoAuth returns an Echo middleware that requires a valid access token and
// sets "user" (*entities.User), "user_id" (int64) and "claims" (*jwt.Claims)
func EchoAuth(sessions SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c)
			if token == "" {
				return errors.ErrUnauthenticated()
			}

			user, claims, err := sessions.ValidateSession(c.Request().Context(), token)
			if err != nil {
				if stdErrors.Is(err, usecaseErrors.ErrTokenInvalid) || stdErrors.Is(err, usecaseErrors.ErrTokenRevoked) {
					return errors.ErrInvalidToken()
				}
				return errors.ErrInternal(err)
			}

			setIdentity(c, user, claims)
			return next(c)
		}
	}
}

// OptionalAuth validates the token if present but doesn't require it.
// Requests with a missing or unusable token continue anonymously.
func OptionalAuth(sessions SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := ExtractToken(c); token != "" {
				if user, claims, err := sessions.ValidateSession(c.Request().Context(), token); err == nil {
					setIdentity(c, user, claims)
				}
			}
			return next(c)
		}
	}
}

// GetUser returns the authenticated user, if any
func GetUser(c echo.Context) (*entities.User, bool) {
	user, ok := c.Get(UserKey).(*entities.User)
	return user, ok
}

// GetUserID returns the authenticated user's ID, if any
func GetUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(UserIDKey).(int64)
	return id, ok
}

// GetClaims returns the claims of the presented token, if any
func GetClaims(c echo.Context) (*jwt.Claims, bool) {
	claims, ok := c.Get(ClaimsKey).(*jwt.Claims)
	return claims, ok
}

// ExtractToken reads the bearer token from the Authorization header, falling
// back to the access_token cookie
func ExtractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

func setIdentity(c echo.Context, user *entities.User, claims *jwt.Claims) {
	c.Set(UserKey, user)
	c.Set(UserIDKey, user.ID)
	c.Set(ClaimsKey, claims)
}
