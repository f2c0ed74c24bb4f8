package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title  string `json:"title" validate:"notblank,max=10"`
	Email  string `json:"email" validate:"omitempty,email"`
	UserID int64  `json:"user_id" validate:"gt=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(sample{Title: "ok", UserID: 1}))

	err := v.Validate(sample{Title: "   ", Email: "nope"})
	require.Error(t, err)
	assert.Equal(t, "title is required; email must be a valid email; user_id must be greater than 0", Describe(err))

	err = v.Validate(sample{Title: "far too long title", UserID: 1})
	assert.Equal(t, "title must be at most 10", Describe(err))
}

func TestDescribe_PlainError(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
