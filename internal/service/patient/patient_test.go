package patient

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfassih/praxis_backend/internal/repo"
	"github.com/alfassih/praxis_backend/internal/repo/enttest"
	"github.com/alfassih/praxis_backend/pkg/storage"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func newTestService(t *testing.T) (Service, *repo.Client, *storage.LocalStore) {
	t.Helper()
	client := newTestClient(t)
	store, err := storage.NewLocalStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return New(client, store), client, store
}

func TestCreatePatient(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	contact := "jane@example.com"

	p, err := svc.Create(ctx, CreatePatientRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: &dob,
		ContactInfo: &contact,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane", p.FirstName)
	assert.Equal(t, "Doe", p.LastName)
	require.NotNil(t, p.DateOfBirth)
	assert.True(t, dob.Equal(*p.DateOfBirth))
	assert.False(t, p.CreatedAt.IsZero())
}

func TestCreatePatientRequiresName(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePatientRequest{FirstName: "", LastName: "Doe"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, CreatePatientRequest{FirstName: "  ", LastName: "Doe"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, CreatePatientRequest{FirstName: "Jane", LastName: ""})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestUpdatePatientRefreshesTimestamp(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreatePatientRequest{FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	anamnesis := "initial consultation notes"
	updated, err := svc.Update(ctx, p.ID, UpdatePatientRequest{Anamnesis: &anamnesis})
	require.NoError(t, err)

	require.NotNil(t, updated.Anamnesis)
	assert.Equal(t, anamnesis, *updated.Anamnesis)
	assert.False(t, updated.UpdatedAt.Before(p.UpdatedAt))
}

func TestGetMissingPatient(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestListPatientsSearchAndOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range [][2]string{{"Anna", "Abel"}, {"Bert", "Baker"}, {"Carla", "Abelsen"}} {
		_, err := svc.Create(ctx, CreatePatientRequest{FirstName: name[0], LastName: name[1]})
		require.NoError(t, err)
	}

	res, err := svc.List(ctx, ListPatientsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Data, 3)
	assert.Equal(t, "Abel", res.Data[0].LastName)

	res, err = svc.List(ctx, ListPatientsRequest{Search: "abel"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}

func TestDeletePatientCascades(t *testing.T) {
	svc, client, store := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreatePatientRequest{FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	th, err := client.Therapist.Create().
		SetFirstName("Greta").
		SetLastName("Stein").
		Save(ctx)
	require.NoError(t, err)

	start := time.Now().Add(time.Hour)
	_, err = client.Session.Create().
		SetPatientID(p.ID).
		SetTherapistID(th.ID).
		SetStartTime(start).
		SetEndTime(start.Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	doc, err := client.Document.Create().
		SetPatientID(p.ID).
		SetTitle("Intake Form").
		SetFilename("cascade-test.pdf").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, doc.Filename, "application/pdf", strings.NewReader("content"), 7))

	require.NoError(t, svc.Delete(ctx, p.ID))

	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	sessions, err := client.Session.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, sessions, "sessions must go with the patient")

	docs, err := client.Document.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, docs, "documents must go with the patient")

	_, err = store.Open(ctx, doc.Filename)
	assert.ErrorIs(t, err, storage.ErrNotFound, "stored file must be removed")

	// therapist is untouched
	ths, err := client.Therapist.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ths)
}

func TestDeleteMissingPatient(t *testing.T) {
	svc, _, _ := newTestService(t)
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
