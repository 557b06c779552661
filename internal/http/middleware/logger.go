package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a middleware that logs each HTTP request through the global
// zerolog logger. Fields: request_id (set by the RequestID middleware),
// method, path, status, latency.
func Logger() fiber.Handler {
	return loggerWith(func() *zerolog.Logger { return &log.Logger })
}

// LoggerWithWriter logs requests as JSON lines to the given writer instead
// of the global logger. Used by tests and for custom log sinks.
func LoggerWithWriter(w io.Writer) fiber.Handler {
	l := zerolog.New(w).With().Timestamp().Logger()
	return loggerWith(func() *zerolog.Logger { return &l })
}

func loggerWith(logger func() *zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Collect fields after the handler executed to capture final status
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		logger().Info().
			Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")

		return err
	}
}
