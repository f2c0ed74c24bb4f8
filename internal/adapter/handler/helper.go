package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/engagement-tracker/errors"
	"github.com/johnquangdev/engagement-tracker/internal/adapter/dto/common"
	"github.com/johnquangdev/engagement-tracker/internal/infrastructure/http/middleware"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
	"github.com/johnquangdev/engagement-tracker/pkg/validator"
)

// getRequestID reads the ID assigned by the request ID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return middleware.GetRequestID(c)
}

// HandleSuccess writes a standardized 200 response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return HandleSuccessWithStatus(logger, c, http.StatusOK, data)
}

// HandleCreated writes a standardized 201 response
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	return HandleSuccessWithStatus(logger, c, http.StatusCreated, data)
}

// HandleSuccessWithStatus writes a standardized success response
func HandleSuccessWithStatus(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := common.SuccessResponse{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := common.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// ErrorHandler renders errors that escape handlers (middleware failures,
// unknown routes, bind errors) with the same envelope as HandleError
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if stdErrors.As(err, &httpErr) {
			err = fromHTTPError(httpErr)
		}

		if writeErr := HandleError(logger, c, err); writeErr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}

func fromHTTPError(httpErr *echo.HTTPError) errors.AppError {
	message := http.StatusText(httpErr.Code)
	if m, ok := httpErr.Message.(string); ok {
		message = m
	}

	switch httpErr.Code {
	case http.StatusNotFound:
		return errors.ErrNotFound("route")
	case http.StatusUnauthorized:
		return errors.ErrUnauthenticated()
	case http.StatusBadRequest:
		return errors.ErrInvalidArgument(message)
	}

	if httpErr.Code >= http.StatusInternalServerError {
		return errors.ErrInternal(httpErr)
	}
	return errors.AppError{
		HTTPCode: httpErr.Code,
		Code:     errors.ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

// toAppError maps use case and domain errors onto API errors
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidCredentials):
		return errors.ErrInvalidCredentials()
	case stdErrors.Is(err, usecaseErrors.ErrTokenInvalid),
		stdErrors.Is(err, usecaseErrors.ErrTokenRevoked):
		return errors.ErrInvalidToken()
	case stdErrors.Is(err, usecaseErrors.ErrUnauthorized):
		return errors.ErrUnauthenticated()

	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound()
	case stdErrors.Is(err, usecaseErrors.ErrParticipantNotFound):
		return errors.ErrParticipantNotFound()
	case stdErrors.Is(err, usecaseErrors.ErrUserNotFound):
		return errors.ErrUserNotFound()
	case usecaseErrors.IsNotFound(err):
		return errors.ErrNotFound("Resource")

	case stdErrors.Is(err, usecaseErrors.ErrParticipantAlreadyExists):
		return errors.ErrParticipantAlreadyExists()
	case stdErrors.Is(err, usecaseErrors.ErrUsernameTaken):
		return errors.ErrUserAlreadyExists("username")
	case stdErrors.Is(err, usecaseErrors.ErrEmailTaken):
		return errors.ErrUserAlreadyExists("email")
	case usecaseErrors.IsConflict(err):
		return errors.ErrAlreadyExists("Resource")

	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())

	case stdErrors.Is(err, usecaseErrors.ErrReportStorageDisabled):
		return errors.ErrServiceUnavailable("Report storage")
	case stdErrors.Is(err, usecaseErrors.ErrServiceUnavailable):
		return errors.ErrServiceUnavailable("Service")
	}

	return errors.ErrInternal(err)
}

// bindAndValidate binds the request body and runs the registered validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrInvalidArgument(validator.Describe(err))
	}
	return nil
}

// pathID parses a positive integer path parameter
func pathID(c echo.Context, name string) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64(name, &id).BindError(); err != nil || id <= 0 {
		return 0, errors.ErrInvalidArgument("invalid " + name)
	}
	return id, nil
}
