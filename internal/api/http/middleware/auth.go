package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	pasetotoken "github.com/alfassih/praxis_backend/pkg/paseto"
	"github.com/alfassih/praxis_backend/pkg/reqctx"
)

// AuthRequired validates a Bearer PASETO access token and checks the session in Redis.
// On success, stores *pasetotoken.Claims in c.Locals(pasetotoken.CtxKeyClaims) and on
// the request context so services can read the caller through reqctx.
func AuthRequired(mgr *pasetotoken.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		raw, found := pasetotoken.BearerToken(c)
		if !found {
			return unauthenticated(c)
		}

		claims, err := mgr.Verify(raw)
		if err != nil {
			return unauthenticated(c)
		}

		// Only access tokens are accepted on protected routes
		if claims.Type != pasetotoken.TokenTypeAccess {
			return unauthenticated(c)
		}

		// The token alone is not enough: the Redis session must still be
		// alive, so logout takes effect before the token expires.
		if claims.SessionID == nil {
			return unauthenticated(c)
		}
		key := "session:" + claims.SessionID.String()
		if err := rdb.Get(c.Context(), key).Err(); err != nil {
			return unauthenticated(c)
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}

// unauthenticated answers 401 and echoes the requested path so clients can
// send the user back there after a successful login.
func unauthenticated(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "authentication required",
		"next":  c.Path(),
	})
}
