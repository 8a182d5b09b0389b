package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/alfassih/praxis_backend/pkg/authorize"
	pasetotoken "github.com/alfassih/praxis_backend/pkg/paseto"
)

// RequirePermission checks if the authenticated user has the given permission.
// It must run after AuthRequired.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainSys, resource, action); err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
