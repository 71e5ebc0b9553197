package utils

import (
	"testing"
	"time"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, entity.RoleEditor, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, entity.RoleEditor, claims.Role)
}

func TestParseTokenRejects(t *testing.T) {
	token, err := GenerateToken(1, entity.RoleAuthor, "secret", time.Hour)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseToken(token, "other")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := GenerateToken(1, entity.RoleAuthor, "secret", -time.Minute)
		require.NoError(t, err)
		_, err = ParseToken(expired, "secret")
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseToken("not.a.token", "secret")
		assert.Error(t, err)
	})
}
