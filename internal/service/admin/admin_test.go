package admin

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
	entuser "github.com/alfassih/praxis_backend/internal/repo/user"
)

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return New(client), client
}

func createPatient(t *testing.T, client *repo.Client, first, last string) *repo.Patient {
	t.Helper()
	p, err := client.Patient.Create().SetFirstName(first).SetLastName(last).Save(context.Background())
	require.NoError(t, err)
	return p
}

func createSession(t *testing.T, client *repo.Client, patientID, therapistID uuid.UUID, start time.Time, status entsession.Status) *repo.Session {
	t.Helper()
	s, err := client.Session.Create().
		SetPatientID(patientID).
		SetTherapistID(therapistID).
		SetStartTime(start).
		SetEndTime(start.Add(time.Hour)).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return s
}

func TestDashboardEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Zero(t, d.TotalPatients)
	assert.Zero(t, d.TotalTherapists)
	assert.Zero(t, d.TotalDocuments)
	assert.Zero(t, d.TotalSessions)
	assert.Zero(t, d.TotalUsers)
	assert.Zero(t, d.NewPatientsWeek)
	assert.Zero(t, d.SessionsToday)
	assert.Empty(t, d.RecentPatients)
	assert.Empty(t, d.UpcomingSessions)
}

func TestDashboardCounts(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	p1 := createPatient(t, client, "Jane", "Doe")
	p2 := createPatient(t, client, "John", "Roe")

	th, err := client.Therapist.Create().SetFirstName("Greta").SetLastName("Stein").Save(ctx)
	require.NoError(t, err)

	_, err = client.User.Create().
		SetEmail("admin@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleAdmin).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Document.Create().
		SetPatientID(p1.ID).
		SetTitle("Intake Form").
		SetFilename("intake.pdf").
		Save(ctx)
	require.NoError(t, err)

	now := time.Now()

	// Today, still scheduled: counts.
	todays := createSession(t, client, p1.ID, th.ID, now.Add(time.Minute), entsession.StatusScheduled)
	// Today but cancelled: does not count.
	createSession(t, client, p1.ID, th.ID, now.Add(2*time.Hour), entsession.StatusCancelled)
	// Tomorrow: not today, but upcoming.
	tomorrow := createSession(t, client, p2.ID, th.ID, now.AddDate(0, 0, 1), entsession.StatusScheduled)
	// Last week: neither.
	createSession(t, client, p2.ID, th.ID, now.AddDate(0, 0, -7), entsession.StatusCompleted)

	d, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, d.TotalPatients)
	assert.Equal(t, 1, d.TotalTherapists)
	assert.Equal(t, 1, d.TotalDocuments)
	assert.Equal(t, 4, d.TotalSessions)
	assert.Equal(t, 1, d.TotalUsers)
	assert.Equal(t, 2, d.NewPatientsWeek)
	assert.Equal(t, 1, d.SessionsToday)

	require.Len(t, d.RecentPatients, 2)

	require.Len(t, d.UpcomingSessions, 2)
	assert.Equal(t, todays.ID, d.UpcomingSessions[0].ID)
	assert.Equal(t, tomorrow.ID, d.UpcomingSessions[1].ID)
}

func TestDashboardLimitsOverviewLists(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	for i := 0; i < overviewListSize+3; i++ {
		createPatient(t, client, fmt.Sprintf("Patient%02d", i), "Test")
	}

	d, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, overviewListSize+3, d.TotalPatients)
	assert.Len(t, d.RecentPatients, overviewListSize)
}
