package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccessLogMiddleware emits one structured line per request and makes
// sure every response carries an X-Request-ID.
type AccessLogMiddleware struct {
	logger zerolog.Logger
}

func NewAccessLogMiddleware(logger zerolog.Logger) *AccessLogMiddleware {
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		rid := requestID(c)

		err := c.Next()

		status := c.Response().StatusCode()
		evt := m.logger.Info()
		if status >= fiber.StatusInternalServerError {
			evt = m.logger.Error()
		}
		evt.
			Str("rid", rid).
			Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ua", c.Get("User-Agent")).
			Msg("http access")

		return err
	}
}

func requestID(c fiber.Ctx) string {
	rid := c.Get("X-Request-ID")
	if rid == "" {
		rid = uuid.NewString()
		c.Set("X-Request-ID", rid)
	}
	return rid
}
