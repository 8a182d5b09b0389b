package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/alfassih/praxis_backend/internal/api/http/handler"
	"github.com/alfassih/praxis_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	dh *handler.DocumentHandler,
	sh *handler.SessionHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired)

	// Patient CRUD
	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), ph.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), ph.Create)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.Get)
	p.Patch("/", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), ph.Update)
	p.Delete("/", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), ph.Delete)

	// Documents
	p.Get("/documents", requirePerm(authorize.ResourceDocument, authorize.ActionList), dh.ListForPatient)
	p.Post("/documents", requirePerm(authorize.ResourceDocument, authorize.ActionUpload), dh.Upload)

	// Sessions
	p.Get("/sessions", requirePerm(authorize.ResourceSession, authorize.ActionList), sh.ListForPatient)
}
