package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfassih/praxis_backend/internal/repo"
	"github.com/alfassih/praxis_backend/internal/repo/enttest"
	entuser "github.com/alfassih/praxis_backend/internal/repo/user"
)

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return New(client), client
}

func createUser(t *testing.T, client *repo.Client, email string, role entuser.Role) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("$argon2id$v=19$m=32768,t=4,p=2$c2FsdHNhbHQ$aGFzaGhhc2g").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestGetByID(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	u := createUser(t, client, "admin@example.com", entuser.RoleAdmin)

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", got.Email)

	_, err = svc.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListOrdersByEmail(t *testing.T) {
	svc, client := newTestService(t)

	createUser(t, client, "zoe@example.com", entuser.RoleTherapist)
	createUser(t, client, "adam@example.com", entuser.RoleAdmin)
	createUser(t, client, "mia@example.com", entuser.RoleTherapist)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "adam@example.com", users[0].Email)
	assert.Equal(t, "zoe@example.com", users[2].Email)
}

func TestActivateDeactivate(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	admin := createUser(t, client, "admin@example.com", entuser.RoleAdmin)
	target := createUser(t, client, "therapist@example.com", entuser.RoleTherapist)

	updated, err := svc.Deactivate(ctx, admin.ID, target.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	updated, err = svc.Activate(ctx, admin.ID, target.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	_, err = svc.Deactivate(ctx, admin.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSelfStatusChangeRejected(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	admin := createUser(t, client, "admin@example.com", entuser.RoleAdmin)

	_, err := svc.Deactivate(ctx, admin.ID, admin.ID)
	assert.ErrorIs(t, err, ErrSelfStatusChange)

	_, err = svc.Activate(ctx, admin.ID, admin.ID)
	assert.ErrorIs(t, err, ErrSelfStatusChange)

	// The account is still active afterwards.
	got, err := svc.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}
