package admin

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/alfassih/praxis_backend/internal/repo"
	entpatient "github.com/alfassih/praxis_backend/internal/repo/patient"
	entsession "github.com/alfassih/praxis_backend/internal/repo/session"
)

// Dashboard aggregates the practice overview shown on the admin landing
// page.
type Dashboard struct {
	TotalPatients   int
	TotalTherapists int
	TotalDocuments  int
	TotalSessions   int
	TotalUsers      int

	// NewPatientsWeek counts patients created in the last seven days.
	NewPatientsWeek int

	// SessionsToday counts sessions scheduled for today that are still
	// in the scheduled state.
	SessionsToday int

	RecentPatients   []*repo.Patient
	UpcomingSessions []*repo.Session
}

type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type adminService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &adminService{db: db}
}

const overviewListSize = 5

func (s *adminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := time.Now()

	d := &Dashboard{}

	var err error
	if d.TotalPatients, err = s.db.Patient.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}
	if d.TotalTherapists, err = s.db.Therapist.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count therapists: %w", err)
	}
	if d.TotalDocuments, err = s.db.Document.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}
	if d.TotalSessions, err = s.db.Session.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	if d.TotalUsers, err = s.db.User.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	weekAgo := now.AddDate(0, 0, -7)
	if d.NewPatientsWeek, err = s.db.Patient.Query().
		Where(entpatient.CreatedAtGTE(weekAgo)).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count new patients: %w", err)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	if d.SessionsToday, err = s.db.Session.Query().
		Where(
			entsession.StatusEQ(entsession.StatusScheduled),
			entsession.StartTimeGTE(dayStart),
			entsession.StartTimeLT(dayEnd),
		).
		Count(ctx); err != nil {
		return nil, fmt.Errorf("count today's sessions: %w", err)
	}

	if d.RecentPatients, err = s.db.Patient.Query().
		Order(entpatient.ByCreatedAt(sql.OrderDesc())).
		Limit(overviewListSize).
		All(ctx); err != nil {
		return nil, fmt.Errorf("recent patients: %w", err)
	}

	if d.UpcomingSessions, err = s.db.Session.Query().
		Where(
			entsession.StatusEQ(entsession.StatusScheduled),
			entsession.StartTimeGTE(now),
		).
		Order(entsession.ByStartTime(sql.OrderAsc())).
		Limit(overviewListSize).
		WithPatient().
		WithTherapist().
		All(ctx); err != nil {
		return nil, fmt.Errorf("upcoming sessions: %w", err)
	}

	return d, nil
}
