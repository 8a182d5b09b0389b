package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/alfassih/praxis_backend/internal/api/http/handler"
	"github.com/alfassih/praxis_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", authRequired)
	users.Get("/me", h.GetMe)

	// Account management is admin territory.
	users.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), h.List)
	users.Get("/:id", requirePerm(authorize.ResourceUser, authorize.ActionRead), h.Get)
	users.Post("/:id/activate", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Activate)
	users.Post("/:id/deactivate", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Deactivate)
}
