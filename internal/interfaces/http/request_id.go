package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// LocalRequestID chave do request id em c.Locals.
const LocalRequestID = "request_id"

// RequestID propaga (ou gera) o X-Request-Id e o expõe em c.Locals para os
// logs de acesso.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDHeader, reqID)
		c.Locals(LocalRequestID, reqID)
		return c.Next()
	}
}
