package errors

import (
	"errors"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

// Common errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource conflict")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrInternalError      = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = entities.ErrInvalidToken
	ErrTokenRevoked       = entities.ErrTokenRevoked
	ErrUserNotFound       = entities.ErrUserNotFound
	ErrUsernameTaken      = entities.ErrUsernameTaken
	ErrEmailTaken         = entities.ErrEmailTaken
	ErrUserExists         = entities.ErrUserExists
)

// Meeting errors
var (
	ErrMeetingNotFound          = entities.ErrMeetingNotFound
	ErrParticipantNotFound      = entities.ErrParticipantNotFound
	ErrParticipantAlreadyExists = entities.ErrParticipantAlreadyExists
)

// Report errors
var (
	ErrReportStorageDisabled = errors.New("report storage is not configured")
)

// IsNotFound reports whether err means a referenced entity does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrMeetingNotFound) ||
		errors.Is(err, ErrParticipantNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsConflict reports whether err means the write collides with existing data
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrParticipantAlreadyExists) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrUserExists)
}
