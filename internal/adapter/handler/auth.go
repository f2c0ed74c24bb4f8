package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/engagement-tracker/errors"
	authDTO "github.com/johnquangdev/engagement-tracker/internal/adapter/dto/auth"
	"github.com/johnquangdev/engagement-tracker/internal/adapter/dto/common"
	"github.com/johnquangdev/engagement-tracker/internal/adapter/presenter"
	"github.com/johnquangdev/engagement-tracker/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/engagement-tracker/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.AuthService
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.AuthService, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /auth/register
// @Summary      Register a new user
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      authDTO.RegisterRequest  true  "Account details"
// @Success      201      {object}  common.SuccessResponse{data=authDTO.UserResponse}
// @Failure      400      {object}  common.ErrorResponse  "Invalid request or validation failed"
// @Failure      409      {object}  common.ErrorResponse  "Username or email already taken"
// @Router       /auth/register [post]
func (h *Auth) Register(c echo.Context) error {
	var req authDTO.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, err := h.authService.Register(c.Request().Context(), auth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToUserResponse(user))
}

// Login handles POST /auth/login
// @Summary      Log in
// @Description  Exchanges username and password for a bearer token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      authDTO.LoginRequest  true  "Credentials"
// @Success      200      {object}  common.SuccessResponse{data=authDTO.AuthResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Failure      401      {object}  common.ErrorResponse  "Invalid username or password"
// @Router       /auth/login [post]
func (h *Auth) Login(c echo.Context) error {
	var req authDTO.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToAuthResponse(resp))
}

// Me handles GET /auth/user
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.SuccessResponse{data=authDTO.UserResponse}
// @Failure      401  {object}  common.ErrorResponse
// @Router       /auth/user [get]
func (h *Auth) Me(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	return HandleSuccess(h.logger, c, presenter.ToUserResponse(user))
}

// Logout handles POST /auth/logout. The presented token is revoked until it expires.
// @Summary      Log out
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.SuccessResponse{data=common.MessageResponse}
// @Failure      401  {object}  common.ErrorResponse
// @Router       /auth/logout [post]
func (h *Auth) Logout(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.MessageResponse{Message: "Logged out successfully"})
}
