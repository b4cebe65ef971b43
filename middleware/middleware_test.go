package middleware

import (
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func actorApp(enabled bool) *fiber.App {
	app := fiber.New()
	app.Use(AuthorizationRequired("secret", enabled, models.Actor{ID: "1", Name: "Sarah Johnson"}))
	app.Get("/me", func(ctx *fiber.Ctx) error {
		actor := GetActor(ctx)
		return ctx.SendString(actor.ID + "|" + actor.Name)
	})
	return app
}

func readBody(t *testing.T, app *fiber.App, token string) (int, string) {
	req := httptest.NewRequest("GET", "/me", nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthorizationRequired(t *testing.T) {
	t.Run("disabled auth acts as fallback user", func(t *testing.T) {
		status, body := readBody(t, actorApp(false), "")
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "1|Sarah Johnson", body)
	})
	t.Run("missing token", func(t *testing.T) {
		status, _ := readBody(t, actorApp(true), "")
		require.Equal(t, fiber.StatusUnauthorized, status)
	})
	t.Run("valid token carries the user", func(t *testing.T) {
		token, _, err := authutils.GetToken("secret", authutils.TokenUser{ID: "7", Name: "Mike Chen"}, time.Now(), time.Hour)
		require.NoError(t, err)
		status, body := readBody(t, actorApp(true), token)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "7|Mike Chen", body)
	})
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(10))
	app.Post("/", func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("POST", "/", strings.NewReader("small")))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/", strings.NewReader(strings.Repeat("x", 64))))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
}
