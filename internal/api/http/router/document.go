package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/alfassih/praxis_backend/internal/api/http/handler"
	"github.com/alfassih/praxis_backend/pkg/authorize"
)

func (r *Router) registerDocumentRoutes(
	api fiber.Router,
	h *handler.DocumentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	documents := api.Group("/documents", authRequired)
	documents.Get("/:id", requirePerm(authorize.ResourceDocument, authorize.ActionRead), h.Get)
	documents.Get("/:id/download", requirePerm(authorize.ResourceDocument, authorize.ActionDownload), h.Download)
}
