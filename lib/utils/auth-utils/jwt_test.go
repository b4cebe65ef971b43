package authutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetToken(t *testing.T) {
	user := TokenUser{ID: "1", Name: "Sarah Johnson", Email: "sarah@company.com"}

	t.Run("claims round trip", func(t *testing.T) {
		token, expiresAt, err := GetToken("secret", user, time.Now(), time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		claims, err := ParseToken("secret", token)
		require.NoError(t, err)
		require.Equal(t, "1", ClaimString(claims, "sub"))
		require.Equal(t, "Sarah Johnson", ClaimString(claims, "name"))
		require.EqualValues(t, expiresAt.Unix(), claims["exp"])
	})
	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := GetToken("secret", user, time.Now(), time.Hour)
		require.NoError(t, err)
		_, err = ParseToken("other", token)
		require.Error(t, err)
	})
	t.Run("expired", func(t *testing.T) {
		token, _, err := GetToken("secret", user, time.Now().Add(-2*time.Hour), time.Hour)
		require.NoError(t, err)
		_, err = ParseToken("secret", token)
		require.Error(t, err)
	})
}
