package initializers

import (
	"ats-backend/fiberlog"
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestAccessLogConfig(t *testing.T) {
	t.Run(`bodies only on request`, func(t *testing.T) {
		require.NotContains(t, accessLogConfig(log.New(), false).Tags, fiberlog.TagBody)
		withBodies := accessLogConfig(log.New(), true).Tags
		require.Contains(t, withBodies, fiberlog.TagBody)
		require.Contains(t, withBodies, fiberlog.TagResBody)
		require.Contains(t, withBodies, fiberlog.TagRoute)
	})
	t.Run(`public content reads are skipped`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := log.New()
		logger.SetOutput(buf)
		logger.SetFormatter(jsonFormatter)

		app := fiber.New()
		app.Use(fiberlog.New(*accessLogConfig(logger, false)))
		app.Get("/api/v1/public/testimonials", func(c *fiber.Ctx) error { return c.SendString("[]") })
		app.Post("/api/v1/public/newsletter", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

		_, err := app.Test(httptest.NewRequest("GET", "/api/v1/public/testimonials", nil))
		require.NoError(t, err)
		require.Zero(t, buf.Len())

		_, err = app.Test(httptest.NewRequest("POST", "/api/v1/public/newsletter", nil))
		require.NoError(t, err)
		require.Contains(t, buf.String(), `"service":"ats-backend"`)
		require.Contains(t, buf.String(), `"route":"/api/v1/public/newsletter"`)
	})
}
