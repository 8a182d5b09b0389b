package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/alfassih/praxis_backend/config"
	"github.com/alfassih/praxis_backend/internal/repo"
	"github.com/alfassih/praxis_backend/internal/service/admin"
	"github.com/alfassih/praxis_backend/internal/service/auth"
	"github.com/alfassih/praxis_backend/internal/service/document"
	"github.com/alfassih/praxis_backend/internal/service/patient"
	"github.com/alfassih/praxis_backend/internal/service/session"
	"github.com/alfassih/praxis_backend/internal/service/therapist"
	"github.com/alfassih/praxis_backend/internal/service/user"
	"github.com/alfassih/praxis_backend/pkg/authorize"
	pasetotoken "github.com/alfassih/praxis_backend/pkg/paseto"
	"github.com/alfassih/praxis_backend/pkg/storage"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvidePatientService,
		ProvideDocumentService,
		ProvideSessionService,
		ProvideTherapistService,
		ProvideAdminService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideUserService(db *repo.Client) user.Service {
	return user.New(db)
}

func ProvidePatientService(db *repo.Client, store storage.Store) patient.Service {
	return patient.New(db, store)
}

func ProvideDocumentService(db *repo.Client, store storage.Store) document.Service {
	return document.New(db, store)
}

func ProvideSessionService(db *repo.Client) session.Service {
	return session.New(db)
}

func ProvideTherapistService(db *repo.Client, authz authorize.IAuthorization, cfg *config.Config) therapist.Service {
	return therapist.New(db, authz, cfg)
}

func ProvideAdminService(db *repo.Client) admin.Service {
	return admin.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
