package fiberlog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Config configures the access log middleware.
type Config struct {
	// Next skips logging for requests it returns true for.
	Next   func(c *fiber.Ctx) bool
	Logger *logrus.Logger
	// Service is added to every entry as the "service" field when set.
	Service string
	Tags    []string
}

// ConfigDefault logs the route template rather than the raw path so that
// candidate ids do not split one endpoint into many series.
var ConfigDefault Config = Config{
	Logger:  nil,
	Service: "ats-backend",
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagRoute,
		RequestID,
	},
}
