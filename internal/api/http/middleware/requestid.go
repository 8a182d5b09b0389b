package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/alfassih/praxis_backend/pkg/reqctx"
)

const (
	HeaderRequestID = "X-Request-Id"
	LocalRequestID  = "request_id"
)

// RequestID middleware generates or preserves request IDs and captures request metadata.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		// prefer incoming, else generate
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalRequestID, rid)
		c.Set(HeaderRequestID, rid) // send back to client
		// set it on the request headers so adaptor/http handlers can read it
		c.Request().Header.Set(HeaderRequestID, rid)

		meta := &reqctx.RequestMeta{
			RequestID:   rid,
			ClientIP:    c.IP(),
			UserAgent:   c.Get("User-Agent"),
			RequestedAt: time.Now(),
		}
		c.Locals("request_meta", meta)
		c.SetContext(reqctx.WithRequestMeta(c.Context(), meta))

		return c.Next()
	}
}

// RequestIDFromFiber retrieves the request ID from Fiber locals.
func RequestIDFromFiber(c fiber.Ctx) (string, bool) {
	v := c.Locals(LocalRequestID)
	s, ok := v.(string)
	return s, ok && s != ""
}

// RequestMetaFromFiber retrieves the full request metadata from Fiber locals.
func RequestMetaFromFiber(c fiber.Ctx) (*reqctx.RequestMeta, bool) {
	v := c.Locals("request_meta")
	meta, ok := v.(*reqctx.RequestMeta)
	return meta, ok && meta != nil
}
