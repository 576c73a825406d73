package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/pkg/logger"
)

// AccessLog registra cada request com método, rota, status, duração e o
// request id propagado pelo middleware RequestID.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		reqID, _ := c.Locals(LocalRequestID).(string)
		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("request")
		return err
	}
}
