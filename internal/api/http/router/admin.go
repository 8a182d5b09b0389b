package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/alfassih/praxis_backend/internal/api/http/handler"
	"github.com/alfassih/praxis_backend/pkg/authorize"
)

func (r *Router) registerAdminRoutes(
	api fiber.Router,
	h *handler.AdminHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	adm := api.Group("/admin", authRequired)
	adm.Get("/dashboard", requirePerm(authorize.ResourceDashboard, authorize.ActionRead), h.Dashboard)
}
