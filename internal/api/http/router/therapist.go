package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/alfassih/praxis_backend/internal/api/http/handler"
	"github.com/alfassih/praxis_backend/pkg/authorize"
)

func (r *Router) registerTherapistRoutes(
	api fiber.Router,
	h *handler.TherapistHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	therapists := api.Group("/therapists", authRequired)

	therapists.Get("/me", h.GetMe)
	therapists.Get("/", requirePerm(authorize.ResourceTherapist, authorize.ActionList), h.List)
	therapists.Post("/", requirePerm(authorize.ResourceTherapist, authorize.ActionCreate), h.Create)

	th := therapists.Group("/:id")
	th.Get("/", requirePerm(authorize.ResourceTherapist, authorize.ActionRead), h.Get)
	th.Patch("/", requirePerm(authorize.ResourceTherapist, authorize.ActionUpdate), h.Update)
	th.Delete("/", requirePerm(authorize.ResourceTherapist, authorize.ActionDelete), h.Delete)
}
