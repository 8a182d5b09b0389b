package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfassih/praxis_backend/internal/repo"
	"github.com/alfassih/praxis_backend/internal/repo/enttest"
	entsession "github.com/alfassih/praxis_backend/internal/repo/session"
)

type fixture struct {
	svc         Service
	client      *repo.Client
	patientID   uuid.UUID
	therapistID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	p, err := client.Patient.Create().SetFirstName("Jane").SetLastName("Doe").Save(ctx)
	require.NoError(t, err)
	th, err := client.Therapist.Create().SetFirstName("Greta").SetLastName("Stein").Save(ctx)
	require.NoError(t, err)

	return &fixture{
		svc:         New(client),
		client:      client,
		patientID:   p.ID,
		therapistID: th.ID,
	}
}

func (f *fixture) createSession(t *testing.T, start time.Time) *repo.Session {
	t.Helper()
	sess, err := f.svc.Create(context.Background(), CreateSessionRequest{
		PatientID:   f.patientID,
		TherapistID: f.therapistID,
		StartTime:   start,
		EndTime:     start.Add(50 * time.Minute),
	})
	require.NoError(t, err)
	return sess
}

func TestCreateSession(t *testing.T) {
	f := newFixture(t)

	start := time.Now().Add(24 * time.Hour)
	sess := f.createSession(t, start)

	assert.Equal(t, entsession.StatusScheduled, sess.Status)
	assert.Equal(t, f.patientID, sess.PatientID)
	assert.Equal(t, f.therapistID, sess.TherapistID)
}

func TestCreateSessionRejectsBadTimeRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	start := time.Now().Add(time.Hour)

	cases := []struct {
		name string
		end  time.Time
	}{
		{"end before start", start.Add(-time.Minute)},
		{"end equals start", start},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, CreateSessionRequest{
				PatientID:   f.patientID,
				TherapistID: f.therapistID,
				StartTime:   start,
				EndTime:     tc.end,
			})
			assert.ErrorIs(t, err, ErrInvalidTimeRange)
		})
	}
}

func TestCreateSessionChecksReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	start := time.Now().Add(time.Hour)

	_, err := f.svc.Create(ctx, CreateSessionRequest{
		PatientID:   uuid.New(),
		TherapistID: f.therapistID,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = f.svc.Create(ctx, CreateSessionRequest{
		PatientID:   f.patientID,
		TherapistID: uuid.New(),
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrTherapistNotFound)
}

func TestCreateSessionWithExplicitStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	start := time.Now().Add(time.Hour)

	completed := string(entsession.StatusCompleted)
	sess, err := f.svc.Create(ctx, CreateSessionRequest{
		PatientID:   f.patientID,
		TherapistID: f.therapistID,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Status:      &completed,
	})
	require.NoError(t, err)
	assert.Equal(t, entsession.StatusCompleted, sess.Status)

	bogus := "postponed"
	_, err = f.svc.Create(ctx, CreateSessionRequest{
		PatientID:   f.patientID,
		TherapistID: f.therapistID,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Status:      &bogus,
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateSessionRebindsReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.createSession(t, time.Now().Add(time.Hour))

	otherPatient, err := f.client.Patient.Create().SetFirstName("Abel").SetLastName("Moreno").Save(ctx)
	require.NoError(t, err)
	otherTherapist, err := f.client.Therapist.Create().SetFirstName("Ines").SetLastName("Vogel").Save(ctx)
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, sess.ID, UpdateSessionRequest{
		PatientID:   &otherPatient.ID,
		TherapistID: &otherTherapist.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, otherPatient.ID, updated.PatientID)
	assert.Equal(t, otherTherapist.ID, updated.TherapistID)

	missing := uuid.New()
	_, err = f.svc.Update(ctx, sess.ID, UpdateSessionRequest{PatientID: &missing})
	assert.ErrorIs(t, err, ErrPatientNotFound)
	_, err = f.svc.Update(ctx, sess.ID, UpdateSessionRequest{TherapistID: &missing})
	assert.ErrorIs(t, err, ErrTherapistNotFound)
}

func TestUpdateSessionValidatesCombinedRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.createSession(t, time.Now().Add(time.Hour))

	// Moving the start past the stored end must fail even though the
	// request itself carries no end time.
	badStart := sess.EndTime.Add(time.Minute)
	_, err := f.svc.Update(ctx, sess.ID, UpdateSessionRequest{StartTime: &badStart})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	newEnd := sess.EndTime.Add(30 * time.Minute)
	updated, err := f.svc.Update(ctx, sess.ID, UpdateSessionRequest{EndTime: &newEnd})
	require.NoError(t, err)
	assert.True(t, newEnd.Equal(updated.EndTime))
}

func TestUpdateSessionStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.createSession(t, time.Now().Add(time.Hour))

	bogus := "postponed"
	_, err := f.svc.Update(ctx, sess.ID, UpdateSessionRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	completed := string(entsession.StatusCompleted)
	updated, err := f.svc.Update(ctx, sess.ID, UpdateSessionRequest{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, entsession.StatusCompleted, updated.Status)
}

func TestCancelSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.createSession(t, time.Now().Add(time.Hour))

	updated, err := f.svc.Cancel(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, entsession.StatusCancelled, updated.Status)

	// Cancelling again is allowed and stays cancelled.
	again, err := f.svc.Cancel(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, entsession.StatusCancelled, again.Status)

	_, err = f.svc.Cancel(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestListSessionsFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.createSession(t, time.Now().Add(time.Hour))
	second := f.createSession(t, time.Now().Add(2*time.Hour))
	_, err := f.svc.Cancel(ctx, first.ID)
	require.NoError(t, err)

	res, err := f.svc.List(ctx, ListSessionsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	require.Len(t, res.Data, 2)
	// Newest first.
	assert.Equal(t, second.ID, res.Data[0].ID)

	scheduled := string(entsession.StatusScheduled)
	res, err = f.svc.List(ctx, ListSessionsRequest{Status: &scheduled})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	otherTherapist := uuid.New()
	res, err = f.svc.List(ctx, ListSessionsRequest{TherapistID: &otherTherapist})
	require.NoError(t, err)
	assert.Zero(t, res.Total)
}

func TestUpcomingSkipsCancelledAndPast(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	past := f.createSession(t, time.Now().Add(-2*time.Hour))
	cancelled := f.createSession(t, time.Now().Add(time.Hour))
	_, err := f.svc.Cancel(ctx, cancelled.ID)
	require.NoError(t, err)
	soon := f.createSession(t, time.Now().Add(30*time.Minute))
	later := f.createSession(t, time.Now().Add(3*time.Hour))

	upcoming, err := f.svc.Upcoming(ctx, 0)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, soon.ID, upcoming[0].ID)
	assert.Equal(t, later.ID, upcoming[1].ID)

	for _, s := range upcoming {
		assert.NotEqual(t, past.ID, s.ID)
		assert.NotEqual(t, cancelled.ID, s.ID)
	}
}
