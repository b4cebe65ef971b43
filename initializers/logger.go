package initializers

import (
	"ats-backend/config"
	"ats-backend/fiberlog"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const publicPrefix = "/api/v1/public/"

var jsonFormatter = &log.JSONFormatter{
	FieldMap: log.FieldMap{
		log.FieldKeyTime: "@timestamp",
		log.FieldKeyMsg:  "message",
	},
}

func InitLogger() *fiberlog.Config {
	level, err := log.ParseLevel(config.Conf.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetFormatter(jsonFormatter)
	log.SetLevel(level)
	if err != nil {
		log.WithField("level", config.Conf.Log.Level).Warn("unknown log level, using info")
	}

	logger := log.New()
	logger.SetFormatter(jsonFormatter)
	logger.SetLevel(level)
	return accessLogConfig(logger, *config.Conf.Log.HTTPBodies)
}

// accessLogConfig skips the public content reads the landing page fires on every visit.
func accessLogConfig(logger *log.Logger, withBodies bool) *fiberlog.Config {
	tags := append([]string{fiberlog.TagPath}, fiberlog.ConfigDefault.Tags...)
	if withBodies {
		tags = append(tags, fiberlog.TagBody, fiberlog.TagResBody)
	}
	return &fiberlog.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodGet && strings.HasPrefix(c.Path(), publicPrefix)
		},
		Logger:  logger,
		Service: fiberlog.ConfigDefault.Service,
		Tags:    tags,
	}
}
