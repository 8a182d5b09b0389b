package therapist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfassih/praxis_backend/config"
	"github.com/alfassih/praxis_backend/internal/repo"
	"github.com/alfassih/praxis_backend/internal/repo/enttest"
	entuser "github.com/alfassih/praxis_backend/internal/repo/user"
	"github.com/alfassih/praxis_backend/pkg/authorize"
)

func newTestAuth(t *testing.T) authorize.IAuthorization {
	t.Helper()

	tmpDir := t.TempDir()

	modelPath := filepath.Join(tmpDir, "model.conf")
	modelContent := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _
g2 = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = (g(r.sub, p.sub, r.dom) || g2(r.sub, p.sub)) && (p.dom == "*" || p.dom == r.dom) && (p.obj == "*" || keyMatch2(r.obj, p.obj)) && (p.act == "*" || keyMatch(r.act, p.act))
`
	require.NoError(t, os.WriteFile(modelPath, []byte(modelContent), 0644))

	policyPath := filepath.Join(tmpDir, "policy.csv")
	require.NoError(t, os.WriteFile(policyPath, []byte(""), 0644))

	e, err := casbin.NewDistributedEnforcer(modelPath, fileadapter.NewAdapter(policyPath))
	require.NoError(t, err)
	e.EnableAutoSave(false)

	auth, err := authorize.NewAuthorization(e)
	require.NoError(t, err)
	return auth
}

func newTestService(t *testing.T) (Service, *repo.Client, authorize.IAuthorization) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	auth := newTestAuth(t)
	cfg := &config.Config{}
	cfg.Password.LowMemoryMode = true
	return New(client, auth, cfg), client, auth
}

func TestCreateTherapist(t *testing.T) {
	svc, client, auth := newTestService(t)
	ctx := context.Background()

	spec := "CBT"
	th, err := svc.Create(ctx, CreateTherapistRequest{
		FirstName:      "Greta",
		LastName:       "Stein",
		Specialization: &spec,
		Email:          "Greta.Stein@Example.com",
		Password:       "long-enough-secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "Greta", th.FirstName)
	require.NotNil(t, th.Specialization)
	assert.Equal(t, "CBT", *th.Specialization)

	// The linked account exists with the normalized email, therapist
	// role and an active flag.
	require.NotNil(t, th.UserID)
	u, err := client.User.Get(ctx, *th.UserID)
	require.NoError(t, err)
	assert.Equal(t, "greta.stein@example.com", u.Email)
	assert.Equal(t, entuser.RoleTherapist, u.Role)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "long-enough-secret", u.PasswordHash)

	roles, err := auth.GetRolesForUserInDomain(ctx, authorize.GroupSubject(u.ID.String()), authorize.DomainSys)
	require.NoError(t, err)
	assert.Contains(t, roles, authorize.RoleTherapist)
}

func TestCreateTherapistValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  CreateTherapistRequest
		want error
	}{
		{"missing first name", CreateTherapistRequest{LastName: "Stein", Email: "a@b.de", Password: "long-enough"}, ErrNameRequired},
		{"missing last name", CreateTherapistRequest{FirstName: "Greta", Email: "a@b.de", Password: "long-enough"}, ErrNameRequired},
		{"bad email", CreateTherapistRequest{FirstName: "Greta", LastName: "Stein", Email: "not-an-email", Password: "long-enough"}, ErrInvalidEmail},
		{"short password", CreateTherapistRequest{FirstName: "Greta", LastName: "Stein", Email: "a@b.de", Password: "short"}, ErrPasswordTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateTherapistDuplicateEmail(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTherapistRequest{
		FirstName: "Greta",
		LastName:  "Stein",
		Email:     "greta@example.com",
		Password:  "long-enough-secret",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateTherapistRequest{
		FirstName: "Gerd",
		LastName:  "Steiner",
		Email:     "greta@example.com",
		Password:  "another-long-secret",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	// Neither table gained a row for the failed attempt.
	users, err := client.User.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, users)

	therapists, err := client.Therapist.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, therapists)
}

func TestGetByUserID(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	th, err := svc.Create(ctx, CreateTherapistRequest{
		FirstName: "Greta",
		LastName:  "Stein",
		Email:     "greta@example.com",
		Password:  "long-enough-secret",
	})
	require.NoError(t, err)
	require.NotNil(t, th.UserID)

	got, err := svc.GetByUserID(ctx, *th.UserID)
	require.NoError(t, err)
	assert.Equal(t, th.ID, got.ID)

	_, err = svc.GetByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrTherapistNotFound)

	// A profile created without an account never matches.
	_, err = client.Therapist.Create().SetFirstName("No").SetLastName("Account").Save(ctx)
	require.NoError(t, err)
}

func TestUpdateProfileLeavesAccountAlone(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	th, err := svc.Create(ctx, CreateTherapistRequest{
		FirstName: "Greta",
		LastName:  "Stein",
		Email:     "greta@example.com",
		Password:  "long-enough-secret",
	})
	require.NoError(t, err)
	before, err := client.User.Get(ctx, *th.UserID)
	require.NoError(t, err)

	newName := "Margarete"
	updated, err := svc.UpdateProfile(ctx, th.ID, UpdateProfileRequest{FirstName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Margarete", updated.FirstName)
	assert.Equal(t, "Stein", updated.LastName)

	after, err := client.User.Get(ctx, *th.UserID)
	require.NoError(t, err)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestDeleteTherapistKeepsAccount(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	th, err := svc.Create(ctx, CreateTherapistRequest{
		FirstName: "Greta",
		LastName:  "Stein",
		Email:     "greta@example.com",
		Password:  "long-enough-secret",
	})
	require.NoError(t, err)
	userID := *th.UserID

	p, err := client.Patient.Create().SetFirstName("Jane").SetLastName("Doe").Save(ctx)
	require.NoError(t, err)
	start := time.Now().Add(time.Hour)
	_, err = client.Session.Create().
		SetPatientID(p.ID).
		SetTherapistID(th.ID).
		SetStartTime(start).
		SetEndTime(start.Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, th.ID))

	_, err = svc.GetByID(ctx, th.ID)
	assert.ErrorIs(t, err, ErrTherapistNotFound)

	sessions, err := client.Session.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, sessions, "sessions must go with the therapist")

	// The login account stays behind.
	exists, err := client.User.Query().Where(entuser.ID(userID)).Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	// The patient is untouched.
	patients, err := client.Patient.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, patients)
}
