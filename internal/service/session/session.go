package session

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/alfassih/praxis_backend/internal/repo"
	entpatient "github.com/alfassih/praxis_backend/internal/repo/patient"
	entsession "github.com/alfassih/praxis_backend/internal/repo/session"
	enttherapist "github.com/alfassih/praxis_backend/internal/repo/therapist"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreateSessionRequest struct {
	PatientID   uuid.UUID
	TherapistID uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	SessionType *string

	// Status defaults to scheduled when nil.
	Status *string
	Notes  *string
}

type UpdateSessionRequest struct {
	PatientID   *uuid.UUID
	TherapistID *uuid.UUID
	StartTime   *time.Time
	EndTime     *time.Time
	SessionType *string
	Status      *string
	Notes       *string
}

type ListSessionsRequest struct {
	Page        int
	PerPage     int
	TherapistID *uuid.UUID
	Status      *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateSessionRequest) (*repo.Session, error)
	GetByID(ctx context.Context, sessionID uuid.UUID) (*repo.Session, error)
	Update(ctx context.Context, sessionID uuid.UUID, req UpdateSessionRequest) (*repo.Session, error)

	// Cancel marks the session cancelled regardless of its current
	// status and returns the updated record.
	Cancel(ctx context.Context, sessionID uuid.UUID) (*repo.Session, error)

	// List returns sessions newest first.
	List(ctx context.Context, req ListSessionsRequest) (*PaginatedResult[*repo.Session], error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Session, error)

	// Upcoming returns scheduled sessions starting at or after now,
	// soonest first.
	Upcoming(ctx context.Context, limit int) ([]*repo.Session, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type sessionService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &sessionService{db: db}
}

func (s *sessionService) Create(ctx context.Context, req CreateSessionRequest) (*repo.Session, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	patientExists, err := s.db.Patient.Query().Where(entpatient.ID(req.PatientID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !patientExists {
		return nil, ErrPatientNotFound
	}

	therapistExists, err := s.db.Therapist.Query().Where(enttherapist.ID(req.TherapistID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check therapist: %w", err)
	}
	if !therapistExists {
		return nil, ErrTherapistNotFound
	}

	create := s.db.Session.Create().
		SetPatientID(req.PatientID).
		SetTherapistID(req.TherapistID).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime).
		SetNillableSessionType(req.SessionType).
		SetNillableNotes(req.Notes)

	if req.Status != nil {
		status := entsession.Status(*req.Status)
		if err := entsession.StatusValidator(status); err != nil {
			return nil, ErrInvalidStatus
		}
		create = create.SetStatus(status)
	}

	sess, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) GetByID(ctx context.Context, sessionID uuid.UUID) (*repo.Session, error) {
	sess, err := s.db.Session.Get(ctx, sessionID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) Update(ctx context.Context, sessionID uuid.UUID, req UpdateSessionRequest) (*repo.Session, error) {
	sess, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Validate the combined time range when either end moves.
	start := sess.StartTime
	end := sess.EndTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	if req.EndTime != nil {
		end = *req.EndTime
	}
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	u := s.db.Session.UpdateOne(sess)

	// Edits may rebind the appointment to another patient or therapist.
	if req.PatientID != nil {
		exists, err := s.db.Patient.Query().Where(entpatient.ID(*req.PatientID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check patient: %w", err)
		}
		if !exists {
			return nil, ErrPatientNotFound
		}
		u = u.SetPatientID(*req.PatientID)
	}
	if req.TherapistID != nil {
		exists, err := s.db.Therapist.Query().Where(enttherapist.ID(*req.TherapistID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check therapist: %w", err)
		}
		if !exists {
			return nil, ErrTherapistNotFound
		}
		u = u.SetTherapistID(*req.TherapistID)
	}

	if req.StartTime != nil {
		u = u.SetStartTime(*req.StartTime)
	}
	if req.EndTime != nil {
		u = u.SetEndTime(*req.EndTime)
	}
	if req.SessionType != nil {
		u = u.SetNillableSessionType(req.SessionType)
	}
	if req.Status != nil {
		status := entsession.Status(*req.Status)
		if err := entsession.StatusValidator(status); err != nil {
			return nil, ErrInvalidStatus
		}
		u = u.SetStatus(status)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return updated, nil
}

func (s *sessionService) Cancel(ctx context.Context, sessionID uuid.UUID) (*repo.Session, error) {
	sess, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated, err := s.db.Session.UpdateOne(sess).
		SetStatus(entsession.StatusCancelled).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel session: %w", err)
	}
	return updated, nil
}

func (s *sessionService) List(ctx context.Context, req ListSessionsRequest) (*PaginatedResult[*repo.Session], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Session.Query()

	if req.TherapistID != nil {
		q = q.Where(entsession.TherapistID(*req.TherapistID))
	}
	if req.Status != nil {
		status := entsession.Status(*req.Status)
		if err := entsession.StatusValidator(status); err != nil {
			return nil, ErrInvalidStatus
		}
		q = q.Where(entsession.StatusEQ(status))
	}

	q = q.Order(entsession.ByStartTime(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	sessions, err := q.WithPatient().WithTherapist().Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Session]{
		Data:       sessions,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *sessionService) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Session, error) {
	exists, err := s.db.Patient.Query().Where(entpatient.ID(patientID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	sessions, err := s.db.Session.Query().
		Where(entsession.PatientID(patientID)).
		Order(entsession.ByStartTime(sql.OrderDesc())).
		WithTherapist().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) Upcoming(ctx context.Context, limit int) ([]*repo.Session, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	sessions, err := s.db.Session.Query().
		Where(
			entsession.StatusEQ(entsession.StatusScheduled),
			entsession.StartTimeGTE(time.Now()),
		).
		Order(entsession.ByStartTime(sql.OrderAsc())).
		WithPatient().
		WithTherapist().
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upcoming sessions: %w", err)
	}
	return sessions, nil
}
