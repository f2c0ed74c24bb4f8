package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret", 24*time.Hour)

	token, issued, err := m.GenerateAccessToken(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, "42", claims.Subject)
}

func TestManager_UniqueTokenIDs(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, a, err := m.GenerateAccessToken(1, "a")
	require.NoError(t, err)
	_, b, err := m.GenerateAccessToken(1, "a")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestManager_Rejects(t *testing.T) {
	m := NewManager("secret", time.Hour)
	token, _, err := m.GenerateAccessToken(7, "bob")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewManager("other", time.Hour).ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewManager("secret", time.Hour)
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := expired.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.ValidateAccessToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
