package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrEmailTaken      = errors.New("email already exists")
	ErrUserExists      = errors.New("user already exists")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidName     = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")

	// Meeting errors
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrInvalidTitle     = errors.New("title is required")
	ErrInvalidTimeRange = errors.New("end time is before start time")

	// Participant errors
	ErrParticipantNotFound      = errors.New("participant not found")
	ErrParticipantAlreadyExists = errors.New("participant already exists in this meeting")

	// Activity errors
	ErrInvalidDuration      = errors.New("duration must be between 0 and 2147483647 seconds")
	ErrSpeakingTimeOverflow = errors.New("speaking time would exceed 2147483647 seconds")
	ErrEmptyContent         = errors.New("content is required")
	ErrMissingEntityID      = errors.New("document or task id is required")
	ErrMissingActivityType  = errors.New("activity type is required")

	// Session errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
)
