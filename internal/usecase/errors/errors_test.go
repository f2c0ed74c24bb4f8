package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/engagement-tracker/internal/domain/entities"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(entities.ErrMeetingNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("failed to load participant: %w", entities.ErrParticipantNotFound)))
	assert.True(t, IsNotFound(ErrUserNotFound))
	assert.False(t, IsNotFound(ErrInvalidInput))
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(entities.ErrParticipantAlreadyExists))
	assert.True(t, IsConflict(fmt.Errorf("register: %w", ErrEmailTaken)))
	assert.False(t, IsConflict(entities.ErrMeetingNotFound))
}
