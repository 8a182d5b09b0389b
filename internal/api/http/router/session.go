package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/alfassih/praxis_backend/internal/api/http/handler"
	"github.com/alfassih/praxis_backend/pkg/authorize"
)

func (r *Router) registerSessionRoutes(
	api fiber.Router,
	h *handler.SessionHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	sessions := api.Group("/sessions", authRequired)

	sessions.Get("/", requirePerm(authorize.ResourceSession, authorize.ActionList), h.List)
	sessions.Get("/upcoming", requirePerm(authorize.ResourceSession, authorize.ActionList), h.Upcoming)
	sessions.Post("/", requirePerm(authorize.ResourceSession, authorize.ActionCreate), h.Create)

	s := sessions.Group("/:id")
	s.Get("/", requirePerm(authorize.ResourceSession, authorize.ActionRead), h.Get)
	s.Patch("/", requirePerm(authorize.ResourceSession, authorize.ActionUpdate), h.Update)
	s.Post("/cancel", requirePerm(authorize.ResourceSession, authorize.ActionCancel), h.Cancel)
}
