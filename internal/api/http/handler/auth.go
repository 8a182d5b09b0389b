package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/alfassih/praxis_backend/internal/service/auth"
	pasetotoken "github.com/alfassih/praxis_backend/pkg/paseto"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return unauthorized(c)
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrSessionNotFound):
		return unauthorized(c)
	case errors.Is(err, auth.ErrWrongPassword):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrInvalidEmail):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		RememberMe bool   `json:"remember_me"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Email:      body.Email,
		Password:   body.Password,
		RememberMe: body.RememberMe,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/logout  (requires AuthRequired middleware)
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return internalError(c)
	}

	return noContent(c)
}

// POST /api/v1/auth/change-password  (requires AuthRequired middleware)
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	// The confirmation must match before the service touches the account.
	if body.NewPassword != body.ConfirmPassword {
		return badRequest(c, "new password and confirmation do not match")
	}

	if err := h.svc.ChangePassword(c.Context(), claims.UserID, auth.ChangePasswordRequest{
		CurrentPassword: body.CurrentPassword,
		NewPassword:     body.NewPassword,
	}); err != nil {
		return mapAuthError(c, err)
	}

	return noContent(c)
}
