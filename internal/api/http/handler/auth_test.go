package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfassih/praxis_backend/internal/service/auth"
	pasetotoken "github.com/alfassih/praxis_backend/pkg/paseto"
)

type authServiceStub struct {
	changePasswordCalls int
	lastChangeRequest   auth.ChangePasswordRequest
}

func (s *authServiceStub) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthTokens, error) {
	return nil, auth.ErrInvalidCredentials
}

func (s *authServiceStub) RefreshTokens(ctx context.Context, refreshToken string) (*auth.AuthTokens, error) {
	return nil, auth.ErrInvalidToken
}

func (s *authServiceStub) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return nil
}

func (s *authServiceStub) ChangePassword(ctx context.Context, userID uuid.UUID, req auth.ChangePasswordRequest) error {
	s.changePasswordCalls++
	s.lastChangeRequest = req
	return nil
}

func newChangePasswordApp(stub *authServiceStub) *fiber.App {
	h := NewAuthHandler(stub)

	app := fiber.New()
	app.Post("/auth/change-password", func(c fiber.Ctx) error {
		c.Locals(pasetotoken.CtxKeyClaims, &pasetotoken.Claims{UserID: uuid.New()})
		return h.ChangePassword(c)
	})
	return app
}

func TestChangePasswordRejectsConfirmationMismatch(t *testing.T) {
	stub := &authServiceStub{}
	app := newChangePasswordApp(stub)

	body := `{"current_password":"old-password-123","new_password":"new-password-456","confirm_password":"something-else"}`
	req := httptest.NewRequest("POST", "/auth/change-password", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, stub.changePasswordCalls, "mismatched confirmation must never reach the service")
}

func TestChangePasswordPassesMatchingConfirmation(t *testing.T) {
	stub := &authServiceStub{}
	app := newChangePasswordApp(stub)

	body := `{"current_password":"old-password-123","new_password":"new-password-456","confirm_password":"new-password-456"}`
	req := httptest.NewRequest("POST", "/auth/change-password", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	require.Equal(t, 1, stub.changePasswordCalls)
	assert.Equal(t, "old-password-123", stub.lastChangeRequest.CurrentPassword)
	assert.Equal(t, "new-password-456", stub.lastChangeRequest.NewPassword)
}
