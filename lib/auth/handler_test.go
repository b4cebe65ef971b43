package auth

import (
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	authapimodels "ats-backend/models/api/auth"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	handler := NewHandler("secret", time.Hour, StubUser{ID: "1", Name: "Sarah Johnson", Email: "sarah@company.com", Password: "demo"})

	t.Run("stub user gets a token", func(t *testing.T) {
		resp, err := handler.Login(authapimodels.LoginRequest{Email: "Sarah@Company.com", Password: "demo"})
		require.NoError(t, err)
		claims, err := authutils.ParseToken("secret", resp.Token)
		require.NoError(t, err)
		require.Equal(t, "1", authutils.ClaimString(claims, "sub"))
		require.Greater(t, resp.ExpiresAt, time.Now().Unix())
	})
	t.Run("wrong password", func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Email: "sarah@company.com", Password: "nope"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
	t.Run("malformed request", func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Email: "broken"})
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}
