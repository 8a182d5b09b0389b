package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/alfassih/praxis_backend/internal/service/admin"
)

type AdminHandler struct {
	svc admin.Service
}

func NewAdminHandler(svc admin.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// GET /admin/dashboard
func (h *AdminHandler) Dashboard(c fiber.Ctx) error {
	d, err := h.svc.Dashboard(c.Context())
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"total_patients":    d.TotalPatients,
		"total_therapists":  d.TotalTherapists,
		"total_documents":   d.TotalDocuments,
		"total_sessions":    d.TotalSessions,
		"total_users":       d.TotalUsers,
		"new_patients_week": d.NewPatientsWeek,
		"sessions_today":    d.SessionsToday,
		"recent_patients":   d.RecentPatients,
		"upcoming_sessions": d.UpcomingSessions,
	})
}
