package patient

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/alfassih/praxis_backend/internal/repo"
	entdocument "github.com/alfassih/praxis_backend/internal/repo/document"
	entpatient "github.com/alfassih/praxis_backend/internal/repo/patient"
	entsession "github.com/alfassih/praxis_backend/internal/repo/session"
	"github.com/alfassih/praxis_backend/pkg/storage"
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

type ListPatientsRequest struct {
	Page    int
	PerPage int
	Search  string // matches first or last name, case-insensitive
	Order   string // asc | desc, by last name
}

type CreatePatientRequest struct {
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	ContactInfo *string
	Anamnesis   *string
}

type UpdatePatientRequest struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	ContactInfo *string
	Anamnesis   *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreatePatientRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, req ListPatientsRequest) (*PaginatedResult[*repo.Patient], error)
	Update(ctx context.Context, patientID uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error)

	// Delete removes the patient together with all their sessions and
	// documents, including the stored files.
	Delete(ctx context.Context, patientID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db    *repo.Client
	store storage.Store
}

func New(db *repo.Client, store storage.Store) Service {
	return &patientService{db: db, store: store}
}

func (s *patientService) Create(ctx context.Context, req CreatePatientRequest) (*repo.Patient, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if req.FirstName == "" || req.LastName == "" {
		return nil, ErrNameRequired
	}

	c := s.db.Patient.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetNillableDateOfBirth(req.DateOfBirth).
		SetNillableContactInfo(req.ContactInfo).
		SetNillableAnamnesis(req.Anamnesis)

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, req ListPatientsRequest) (*PaginatedResult[*repo.Patient], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query()

	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entpatient.Or(
			entpatient.FirstNameContainsFold(search),
			entpatient.LastNameContainsFold(search),
		))
	}

	if req.Order == "desc" {
		q = q.Order(entpatient.ByLastName(sql.OrderDesc()), entpatient.ByFirstName(sql.OrderDesc()))
	} else {
		q = q.Order(entpatient.ByLastName(sql.OrderAsc()), entpatient.ByFirstName(sql.OrderAsc()))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	patients, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Patient]{
		Data:       patients,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) Update(ctx context.Context, patientID uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	u := s.db.Patient.UpdateOne(p)

	if req.FirstName != nil {
		name := strings.TrimSpace(*req.FirstName)
		if name == "" {
			return nil, ErrNameRequired
		}
		u = u.SetFirstName(name)
	}
	if req.LastName != nil {
		name := strings.TrimSpace(*req.LastName)
		if name == "" {
			return nil, ErrNameRequired
		}
		u = u.SetLastName(name)
	}
	if req.DateOfBirth != nil {
		u = u.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.ContactInfo != nil {
		u = u.SetNillableContactInfo(req.ContactInfo)
	}
	if req.Anamnesis != nil {
		u = u.SetNillableAnamnesis(req.Anamnesis)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return updated, nil
}

// Delete removes the patient record, all dependent rows and the stored
// document files. The database work happens in one transaction; file
// cleanup runs afterwards so a storage hiccup can't leave half a record.
func (s *patientService) Delete(ctx context.Context, patientID uuid.UUID) error {
	exists, err := s.db.Patient.Query().Where(entpatient.ID(patientID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return ErrPatientNotFound
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	fileKeys, err := tx.Document.Query().
		Where(entdocument.PatientID(patientID)).
		Select(entdocument.FieldFilename).
		Strings(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("collect document files: %w", err)
	}

	if _, err := tx.Session.Delete().Where(entsession.PatientID(patientID)).Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete sessions: %w", err)
	}
	if _, err := tx.Document.Delete().Where(entdocument.PatientID(patientID)).Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete documents: %w", err)
	}
	if err := tx.Patient.DeleteOneID(patientID).Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete patient: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	// Best-effort file cleanup; orphaned files are harmless and logged.
	for _, key := range fileKeys {
		if err := s.store.Delete(ctx, key); err != nil {
			slog.Warn("failed to delete document file", "key", key, "error", err)
		}
	}

	return nil
}
