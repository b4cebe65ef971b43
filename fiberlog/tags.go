package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid       = "pid"
	TagLatency   = "latency"
	TagStatus    = "status"
	TagMethod    = "method"
	TagPath      = "path"
	TagURL       = "url"
	TagIP        = "ip"
	TagUA        = "ua"
	TagBody      = "body"
	TagResBody   = "resBody"
	TagQuery     = "queryParams"
	TagRoute     = "route"
	RequestID    = "requestId"
	TagBytesSent = "bytesSent"
)

// bodies larger than this are not logged
const maxLoggedBody = 4096

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag extracts one log field from the request
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, _ *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return truncatedBody(c.Get(fiber.HeaderContentType), c.Body())
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			return truncatedBody(string(c.Response().Header.ContentType()), c.Response().Body())
		},
		TagQuery: func(c *fiber.Ctx, _ *data) interface{} {
			return string(c.Request().URI().QueryString())
		},
		TagRoute: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Route().Path
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderXRequestID)
		},
		TagBytesSent: func(c *fiber.Ctx, _ *data) interface{} {
			return len(c.Response().Body())
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

// truncatedBody keeps logs free of file uploads and exports.
func truncatedBody(contentType string, body []byte) string {
	switch {
	case len(body) == 0:
		return ""
	case len(body) > maxLoggedBody:
		return "<truncated>"
	case contentType != "" && !isTextual(contentType):
		return "<binary>"
	}
	return string(body)
}

func isTextual(contentType string) bool {
	for _, prefix := range []string{fiber.MIMEApplicationJSON, "text/", fiber.MIMEApplicationForm} {
		if len(contentType) >= len(prefix) && contentType[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
