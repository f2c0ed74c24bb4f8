package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/engagement-tracker/errors"
	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/engagement-tracker/internal/usecase/errors"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestToAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHTTP int
		wantCode errors.ErrorCode
	}{
		{"wrapped meeting not found", fmt.Errorf("failed to get meeting: %w", entities.ErrMeetingNotFound), http.StatusNotFound, errors.ErrorCode_MEETING_NOT_FOUND},
		{"participant not found", entities.ErrParticipantNotFound, http.StatusNotFound, errors.ErrorCode_PARTICIPANT_NOT_FOUND},
		{"user not found", entities.ErrUserNotFound, http.StatusNotFound, errors.ErrorCode_AUTH_USER_NOT_FOUND},
		{"duplicate participant", usecaseErrors.ErrParticipantAlreadyExists, http.StatusConflict, errors.ErrorCode_PARTICIPANT_ALREADY_EXISTS},
		{"username taken", usecaseErrors.ErrUsernameTaken, http.StatusConflict, errors.ErrorCode_AUTH_USER_ALREADY_EXISTS},
		{"generic conflict", usecaseErrors.ErrConflict, http.StatusConflict, errors.ErrorCode_ALREADY_EXISTS},
		{"invalid input", fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, entities.ErrInvalidDuration), http.StatusBadRequest, errors.ErrorCode_INVALID_ARGUMENT},
		{"revoked token", usecaseErrors.ErrTokenRevoked, http.StatusUnauthorized, errors.ErrorCode_AUTH_INVALID_TOKEN},
		{"storage disabled", usecaseErrors.ErrReportStorageDisabled, http.StatusServiceUnavailable, errors.ErrorCode_SERVICE_UNAVAILABLE},
		{"app error passes through", errors.ErrInvalidPayload(), http.StatusBadRequest, errors.ErrorCode_INVALID_PAYLOAD},
		{"unknown", stdErrors.New("connection reset"), http.StatusInternalServerError, errors.ErrorCode_INTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toAppError(tt.err)
			assert.Equal(t, tt.wantHTTP, got.HTTPCode)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestStorageError(t *testing.T) {
	err := storageError("put report", stdErrors.New("bucket gone"))
	var appErr errors.AppError
	assert.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_INTEGRATION_STORAGE_FAILED, appErr.Code)

	assert.ErrorIs(t, storageError("put report", usecaseErrors.ErrReportStorageDisabled), usecaseErrors.ErrReportStorageDisabled)
	assert.ErrorIs(t, storageError("put report", entities.ErrMeetingNotFound), entities.ErrMeetingNotFound)
}
