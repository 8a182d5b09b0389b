package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/alfassih/praxis_backend/config"
	"github.com/alfassih/praxis_backend/internal/repo"
	entuser "github.com/alfassih/praxis_backend/internal/repo/user"
	pasetotoken "github.com/alfassih/praxis_backend/pkg/paseto"
	"github.com/alfassih/praxis_backend/pkg/util/password"
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Email    string
	Password string

	// RememberMe extends the session lifetime from minutes to days.
	RememberMe bool
}

type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

// Login authenticates by email and password. Unknown email, wrong password
// and a deactivated account all fail with ErrInvalidCredentials so a caller
// cannot probe which accounts exist.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidCredentials
	}
	if req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().Where(entuser.EmailEQ(req.Email)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, u, req.RememberMe)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	// Check session exists
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend the session, but never shorten a remembered one.
	s.rdb.ExpireGT(ctx, sessionKey, s.sessionTTL(false))

	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(pasetotoken.Identity{
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
		Role:      claims.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged until logout
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired, not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// ChangePassword
// ---------------------------------------------------------------------------

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("get user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, req.CurrentPassword); err != nil {
		return ErrWrongPassword
	}

	minLen := s.cfg.Password.MinLength
	if minLen <= 0 {
		minLen = 8
	}
	if len(req.NewPassword) < minLen {
		return ErrPasswordTooShort
	}

	newHash, err := password.HashWithParams(req.NewPassword, password.ParamsFromCentralConfig(s.cfg.Password))
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.User.UpdateOne(u).SetPasswordHash(newHash).Save(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) sessionTTL(remember bool) time.Duration {
	if remember {
		days := s.cfg.Authentication.RememberTTLDays
		if days <= 0 {
			days = 30
		}
		return time.Duration(days) * 24 * time.Hour
	}

	mins := s.cfg.Authentication.SessionTTLMinutes
	if mins <= 0 {
		mins = 12 * 60
	}
	return time.Duration(mins) * time.Minute
}

func (s *authService) createSession(ctx context.Context, u *repo.User, remember bool) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	sessionTTL := s.sessionTTL(remember)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), sessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	id := pasetotoken.Identity{
		UserID:    u.ID,
		SessionID: &sessionID,
		Role:      string(u.Role),
	}

	access, err := s.paseto.IssueAccess(id)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(id)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}
