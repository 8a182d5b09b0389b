package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/alfassih/praxis_backend/internal/service/therapist"
	pasetotoken "github.com/alfassih/praxis_backend/pkg/paseto"
)

type TherapistHandler struct {
	svc therapist.Service
}

func NewTherapistHandler(svc therapist.Service) *TherapistHandler {
	return &TherapistHandler{svc: svc}
}

func mapTherapistError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, therapist.ErrTherapistNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, therapist.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, therapist.ErrNameRequired),
		errors.Is(err, therapist.ErrInvalidEmail),
		errors.Is(err, therapist.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /therapists
func (h *TherapistHandler) List(c fiber.Ctx) error {
	therapists, err := h.svc.List(c.Context())
	if err != nil {
		return mapTherapistError(c, err)
	}

	return ok(c, therapists)
}

// POST /therapists
func (h *TherapistHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName      string  `json:"first_name"`
		LastName       string  `json:"last_name"`
		Specialization *string `json:"specialization"`
		Email          string  `json:"email"`
		Password       string  `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	th, err := h.svc.Create(c.Context(), therapist.CreateTherapistRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Specialization: body.Specialization,
		Email:          body.Email,
		Password:       body.Password,
	})
	if err != nil {
		return mapTherapistError(c, err)
	}

	return created(c, th)
}

// GET /therapists/me  (requires AuthRequired middleware)
func (h *TherapistHandler) GetMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	th, err := h.svc.GetByUserID(c.Context(), claims.UserID)
	if err != nil {
		return mapTherapistError(c, err)
	}

	return ok(c, th)
}

// GET /therapists/:id
func (h *TherapistHandler) Get(c fiber.Ctx) error {
	therapistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	th, err := h.svc.GetByID(c.Context(), therapistID)
	if err != nil {
		return mapTherapistError(c, err)
	}

	return ok(c, th)
}

// PATCH /therapists/:id
func (h *TherapistHandler) Update(c fiber.Ctx) error {
	therapistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	var body struct {
		FirstName      *string `json:"first_name"`
		LastName       *string `json:"last_name"`
		Specialization *string `json:"specialization"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	th, err := h.svc.UpdateProfile(c.Context(), therapistID, therapist.UpdateProfileRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Specialization: body.Specialization,
	})
	if err != nil {
		return mapTherapistError(c, err)
	}

	return ok(c, th)
}

// DELETE /therapists/:id
func (h *TherapistHandler) Delete(c fiber.Ctx) error {
	therapistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	if err := h.svc.Delete(c.Context(), therapistID); err != nil {
		return mapTherapistError(c, err)
	}

	return noContent(c)
}
