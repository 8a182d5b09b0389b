package therapist

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/alfassih/praxis_backend/config"
	"github.com/alfassih/praxis_backend/internal/repo"
	entsession "github.com/alfassih/praxis_backend/internal/repo/session"
	enttherapist "github.com/alfassih/praxis_backend/internal/repo/therapist"
	entuser "github.com/alfassih/praxis_backend/internal/repo/user"
	"github.com/alfassih/praxis_backend/pkg/authorize"
	"github.com/alfassih/praxis_backend/pkg/util/password"
)

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// CreateTherapistRequest creates a therapist profile together with the
// user account it logs in with.
type CreateTherapistRequest struct {
	FirstName      string
	LastName       string
	Specialization *string

	Email    string
	Password string
}

type UpdateProfileRequest struct {
	FirstName      *string
	LastName       *string
	Specialization *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create atomically provisions the user account (role therapist,
	// active) and the linked profile. Either both rows exist afterwards
	// or neither does.
	Create(ctx context.Context, req CreateTherapistRequest) (*repo.Therapist, error)

	GetByID(ctx context.Context, therapistID uuid.UUID) (*repo.Therapist, error)

	// GetByUserID resolves the profile belonging to a user account.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Therapist, error)

	List(ctx context.Context) ([]*repo.Therapist, error)

	// UpdateProfile touches name and specialization only, never the
	// linked account's credentials.
	UpdateProfile(ctx context.Context, therapistID uuid.UUID, req UpdateProfileRequest) (*repo.Therapist, error)

	// Delete removes the profile and its sessions. The linked user
	// account survives.
	Delete(ctx context.Context, therapistID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type therapistService struct {
	db   *repo.Client
	auth authorize.IAuthorization
	cfg  *config.Config
}

func New(db *repo.Client, auth authorize.IAuthorization, cfg *config.Config) Service {
	return &therapistService{db: db, auth: auth, cfg: cfg}
}

func (s *therapistService) Create(ctx context.Context, req CreateTherapistRequest) (*repo.Therapist, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.FirstName == "" || req.LastName == "" {
		return nil, ErrNameRequired
	}
	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}

	minLen := s.cfg.Password.MinLength
	if minLen <= 0 {
		minLen = 8
	}
	if len(req.Password) < minLen {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.db.User.Query().Where(entuser.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	passHash, err := password.HashWithParams(req.Password, password.ParamsFromCentralConfig(s.cfg.Password))
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	u, err := tx.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetRole(entuser.RoleTherapist).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	th, err := tx.Therapist.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetNillableSpecialization(req.Specialization).
		SetUserID(u.ID).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create therapist profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	// Policy store lives outside the DB transaction; a failure here
	// leaves a valid account that just needs its role re-granted.
	if err := authorize.AssignAccountRole(ctx, s.auth, u.ID.String(), string(entuser.RoleTherapist)); err != nil {
		slog.Error("failed to grant therapist role", "user_id", u.ID, "error", err)
	}

	return th, nil
}

func (s *therapistService) GetByID(ctx context.Context, therapistID uuid.UUID) (*repo.Therapist, error) {
	th, err := s.db.Therapist.Get(ctx, therapistID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTherapistNotFound
		}
		return nil, fmt.Errorf("get therapist: %w", err)
	}
	return th, nil
}

func (s *therapistService) GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Therapist, error) {
	th, err := s.db.Therapist.Query().
		Where(enttherapist.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTherapistNotFound
		}
		return nil, fmt.Errorf("get therapist by user: %w", err)
	}
	return th, nil
}

func (s *therapistService) List(ctx context.Context) ([]*repo.Therapist, error) {
	therapists, err := s.db.Therapist.Query().
		Order(enttherapist.ByLastName(sql.OrderAsc()), enttherapist.ByFirstName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list therapists: %w", err)
	}
	return therapists, nil
}

func (s *therapistService) UpdateProfile(ctx context.Context, therapistID uuid.UUID, req UpdateProfileRequest) (*repo.Therapist, error) {
	th, err := s.GetByID(ctx, therapistID)
	if err != nil {
		return nil, err
	}

	u := s.db.Therapist.UpdateOne(th)

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
	if req.Specialization != nil {
		u = u.SetNillableSpecialization(req.Specialization)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update therapist: %w", err)
	}
	return updated, nil
}

func (s *therapistService) Delete(ctx context.Context, therapistID uuid.UUID) error {
	exists, err := s.db.Therapist.Query().Where(enttherapist.ID(therapistID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check therapist: %w", err)
	}
	if !exists {
		return ErrTherapistNotFound
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Session.Delete().Where(entsession.TherapistID(therapistID)).Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete sessions: %w", err)
	}
	if err := tx.Therapist.DeleteOneID(therapistID).Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete therapist: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
