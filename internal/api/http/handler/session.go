package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/alfassih/praxis_backend/internal/service/session"
)

type SessionHandler struct {
	svc session.Service
}

func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func mapSessionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, session.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, session.ErrTherapistNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, session.ErrInvalidTimeRange), errors.Is(err, session.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /sessions
func (h *SessionHandler) List(c fiber.Ctx) error {
	var q struct {
		Page        int    `query:"page"`
		PerPage     int    `query:"per_page"`
		TherapistID string `query:"therapist_id"`
		Status      string `query:"status"`
	}
	_ = c.Bind().Query(&q)

	req := session.ListSessionsRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.TherapistID != "" {
		id, err := uuid.Parse(q.TherapistID)
		if err != nil {
			return badRequest(c, "invalid therapist_id")
		}
		req.TherapistID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, fiber.Map{
		"sessions":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /sessions/upcoming
func (h *SessionHandler) Upcoming(c fiber.Ctx) error {
	var q struct {
		Limit int `query:"limit"`
	}
	_ = c.Bind().Query(&q)

	sessions, err := h.svc.Upcoming(c.Context(), q.Limit)
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, sessions)
}

// POST /sessions
func (h *SessionHandler) Create(c fiber.Ctx) error {
	var body struct {
		PatientID   string    `json:"patient_id"`
		TherapistID string    `json:"therapist_id"`
		StartTime   time.Time `json:"start_time"`
		EndTime     time.Time `json:"end_time"`
		SessionType *string   `json:"session_type"`
		Status      *string   `json:"status"`
		Notes       *string   `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	therapistID, err := uuid.Parse(body.TherapistID)
	if err != nil {
		return badRequest(c, "invalid therapist_id")
	}

	s, err := h.svc.Create(c.Context(), session.CreateSessionRequest{
		PatientID:   patientID,
		TherapistID: therapistID,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		SessionType: body.SessionType,
		Status:      body.Status,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapSessionError(c, err)
	}

	return created(c, s)
}

// GET /sessions/:id
func (h *SessionHandler) Get(c fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	s, err := h.svc.GetByID(c.Context(), sessionID)
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, s)
}

// PATCH /sessions/:id
func (h *SessionHandler) Update(c fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body struct {
		PatientID   *string    `json:"patient_id"`
		TherapistID *string    `json:"therapist_id"`
		StartTime   *time.Time `json:"start_time"`
		EndTime     *time.Time `json:"end_time"`
		SessionType *string    `json:"session_type"`
		Status      *string    `json:"status"`
		Notes       *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := session.UpdateSessionRequest{
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		SessionType: body.SessionType,
		Status:      body.Status,
		Notes:       body.Notes,
	}
	if body.PatientID != nil {
		id, err := uuid.Parse(*body.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if body.TherapistID != nil {
		id, err := uuid.Parse(*body.TherapistID)
		if err != nil {
			return badRequest(c, "invalid therapist_id")
		}
		req.TherapistID = &id
	}

	s, err := h.svc.Update(c.Context(), sessionID, req)
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, s)
}

// POST /sessions/:id/cancel
func (h *SessionHandler) Cancel(c fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	s, err := h.svc.Cancel(c.Context(), sessionID)
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, s)
}

// GET /patients/:id/sessions
func (h *SessionHandler) ListForPatient(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	sessions, err := h.svc.ListForPatient(c.Context(), patientID)
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, sessions)
}
