package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/alfassih/praxis_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrNameRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Search  string `query:"search"`
		Order   string `query:"order"`
	}
	_ = c.Bind().Query(&q)

	result, err := h.svc.List(c.Context(), patient.ListPatientsRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  q.Search,
		Order:   q.Order,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{
		"patients":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName   string     `json:"first_name"`
		LastName    string     `json:"last_name"`
		DateOfBirth *time.Time `json:"date_of_birth"`
		ContactInfo *string    `json:"contact_info"`
		Anamnesis   *string    `json:"anamnesis"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Create(c.Context(), patient.CreatePatientRequest{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		DateOfBirth: body.DateOfBirth,
		ContactInfo: body.ContactInfo,
		Anamnesis:   body.Anamnesis,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FirstName   *string    `json:"first_name"`
		LastName    *string    `json:"last_name"`
		DateOfBirth *time.Time `json:"date_of_birth"`
		ContactInfo *string    `json:"contact_info"`
		Anamnesis   *string    `json:"anamnesis"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), patientID, patient.UpdatePatientRequest{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		DateOfBirth: body.DateOfBirth,
		ContactInfo: body.ContactInfo,
		Anamnesis:   body.Anamnesis,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), patientID); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}
