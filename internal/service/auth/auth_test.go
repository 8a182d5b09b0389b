package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfassih/praxis_backend/config"
	"github.com/alfassih/praxis_backend/internal/repo"
	"github.com/alfassih/praxis_backend/internal/repo/enttest"
	entuser "github.com/alfassih/praxis_backend/internal/repo/user"
	pasetotoken "github.com/alfassih/praxis_backend/pkg/paseto"
	"github.com/alfassih/praxis_backend/pkg/util/password"
)

type testEnv struct {
	svc    Service
	client *repo.Client
	mgr    *pasetotoken.Manager
	mr     *miniredis.Miniredis
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	mgr, err := pasetotoken.New(pasetotoken.Config{
		Mode:       pasetotoken.ModeLocal,
		Issuer:     "praxis_backend_test",
		Audience:   "praxis_backend_test",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}, pasetotoken.NewLocalKeys())
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{}
	cfg.Password.LowMemoryMode = true

	return &testEnv{
		svc:    New(client, rdb, mgr, cfg),
		client: client,
		mgr:    mgr,
		mr:     mr,
	}
}

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	env := newTestEnv(t)
	return env.svc, env.client
}

func createAccount(t *testing.T, client *repo.Client, email, plain string, active bool) *repo.User {
	t.Helper()
	hash, err := password.HashWithParams(plain, password.LowMemoryParams())
	require.NoError(t, err)

	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash(hash).
		SetRole(entuser.RoleTherapist).
		SetIsActive(active).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// All login failures look the same so a caller cannot tell which
// accounts exist or which ones are deactivated.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createAccount(t, client, "active@example.com", "correct-password", true)
	createAccount(t, client, "inactive@example.com", "correct-password", false)

	cases := []struct {
		name string
		req  LoginRequest
	}{
		{"unknown email", LoginRequest{Email: "nobody@example.com", Password: "correct-password"}},
		{"wrong password", LoginRequest{Email: "active@example.com", Password: "wrong-password"}},
		{"inactive account", LoginRequest{Email: "inactive@example.com", Password: "correct-password"}},
		{"malformed email", LoginRequest{Email: "not an email", Password: "correct-password"}},
		{"empty password", LoginRequest{Email: "active@example.com", Password: ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tc.req)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLoginIssuesTokensAndStoresSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u := createAccount(t, env.client, "t@example.com", "pw123-pw123", true)

	tokens, err := env.svc.Login(ctx, LoginRequest{Email: "t@example.com", Password: "pw123-pw123"})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	claims, err := env.mgr.Verify(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, pasetotoken.TokenTypeAccess, claims.Type)
	assert.Equal(t, u.ID, claims.UserID)
	require.NotNil(t, claims.SessionID)

	// The server-side session backs the token.
	key := "session:" + claims.SessionID.String()
	got, err := env.mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), got)
	assert.Equal(t, 12*time.Hour, env.mr.TTL(key))
}

func TestLoginRememberMeExtendsSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	createAccount(t, env.client, "t@example.com", "pw123-pw123", true)

	tokens, err := env.svc.Login(ctx, LoginRequest{
		Email:      "t@example.com",
		Password:   "pw123-pw123",
		RememberMe: true,
	})
	require.NoError(t, err)

	claims, err := env.mgr.Verify(tokens.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, claims.SessionID)
	assert.Equal(t, 30*24*time.Hour, env.mr.TTL("session:"+claims.SessionID.String()))
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u := createAccount(t, env.client, "t@example.com", "pw123-pw123", true)

	tokens, err := env.svc.Login(ctx, LoginRequest{Email: "t@example.com", Password: "pw123-pw123"})
	require.NoError(t, err)

	refreshed, err := env.svc.RefreshTokens(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, tokens.RefreshToken, refreshed.RefreshToken)

	claims, err := env.mgr.Verify(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, pasetotoken.TokenTypeAccess, claims.Type)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	createAccount(t, env.client, "t@example.com", "pw123-pw123", true)

	tokens, err := env.svc.Login(ctx, LoginRequest{Email: "t@example.com", Password: "pw123-pw123"})
	require.NoError(t, err)

	claims, err := env.mgr.Verify(tokens.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, claims.SessionID)

	require.NoError(t, env.svc.Logout(ctx, *claims.SessionID))
	assert.False(t, env.mr.Exists("session:"+claims.SessionID.String()))

	_, err = env.svc.RefreshTokens(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RefreshTokens(context.Background(), "v4.local.not-a-real-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(t)

	mgr, err := pasetotoken.New(pasetotoken.Config{
		Mode:       pasetotoken.ModeLocal,
		Issuer:     "praxis_backend_test",
		Audience:   "praxis_backend_test",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}, pasetotoken.NewLocalKeys())
	require.NoError(t, err)

	// A token from a foreign key never verifies, regardless of type.
	sid := uuid.Must(uuid.NewV7())
	access, err := mgr.IssueAccess(pasetotoken.Identity{UserID: uuid.New(), SessionID: &sid})
	require.NoError(t, err)

	_, err = svc.RefreshTokens(context.Background(), access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	u := createAccount(t, client, "user@example.com", "old-password-123", true)

	err := svc.ChangePassword(ctx, u.ID, ChangePasswordRequest{
		CurrentPassword: "old-password-123",
		NewPassword:     "new-password-456",
	})
	require.NoError(t, err)

	updated, err := client.User.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.NoError(t, password.Verify(updated.PasswordHash, "new-password-456"))
	assert.Error(t, password.Verify(updated.PasswordHash, "old-password-123"))
}

func TestChangePasswordRejectsWrongCurrent(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	u := createAccount(t, client, "user@example.com", "old-password-123", true)

	err := svc.ChangePassword(ctx, u.ID, ChangePasswordRequest{
		CurrentPassword: "guess",
		NewPassword:     "new-password-456",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = svc.ChangePassword(ctx, u.ID, ChangePasswordRequest{
		CurrentPassword: "old-password-123",
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	err = svc.ChangePassword(ctx, uuid.New(), ChangePasswordRequest{
		CurrentPassword: "old-password-123",
		NewPassword:     "new-password-456",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
