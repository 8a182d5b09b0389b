package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/alfassih/praxis_backend/internal/service/user"
	pasetotoken "github.com/alfassih/praxis_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrSelfStatusChange):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// GET /users/me
func (h *UserHandler) GetMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// GET /users
func (h *UserHandler) List(c fiber.Ctx) error {
	users, err := h.svc.List(c.Context())
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, users)
}

// GET /users/:id
func (h *UserHandler) Get(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	u, err := h.svc.GetByID(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// POST /users/:id/activate
func (h *UserHandler) Activate(c fiber.Ctx) error {
	return h.setActive(c, true)
}

// POST /users/:id/deactivate
func (h *UserHandler) Deactivate(c fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *UserHandler) setActive(c fiber.Ctx, active bool) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var u any
	if active {
		u, err = h.svc.Activate(c.Context(), claims.UserID, targetID)
	} else {
		u, err = h.svc.Deactivate(c.Context(), claims.UserID, targetID)
	}
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}
