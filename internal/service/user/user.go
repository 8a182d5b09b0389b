package user

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/alfassih/praxis_backend/internal/repo"
	entuser "github.com/alfassih/praxis_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	List(ctx context.Context) ([]*repo.User, error)

	// Activate and Deactivate flip the active flag. callerID is the
	// acting admin; targeting yourself is rejected so an admin cannot
	// lock themselves out.
	Activate(ctx context.Context, callerID, targetID uuid.UUID) (*repo.User, error)
	Deactivate(ctx context.Context, callerID, targetID uuid.UUID) (*repo.User, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &userService{db: db}
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context) ([]*repo.User, error) {
	users, err := s.db.User.Query().
		Order(entuser.ByEmail(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Activate(ctx context.Context, callerID, targetID uuid.UUID) (*repo.User, error) {
	return s.setActive(ctx, callerID, targetID, true)
}

func (s *userService) Deactivate(ctx context.Context, callerID, targetID uuid.UUID) (*repo.User, error) {
	return s.setActive(ctx, callerID, targetID, false)
}

func (s *userService) setActive(ctx context.Context, callerID, targetID uuid.UUID, active bool) (*repo.User, error) {
	if callerID == targetID {
		return nil, ErrSelfStatusChange
	}

	u, err := s.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	updated, err := s.db.User.UpdateOne(u).SetIsActive(active).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user status: %w", err)
	}
	return updated, nil
}
