package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/alfassih/praxis_backend/config"
	"github.com/alfassih/praxis_backend/internal/repo"
	"github.com/alfassih/praxis_backend/pkg/authorize"
	"github.com/alfassih/praxis_backend/pkg/database"
	"github.com/alfassih/praxis_backend/pkg/observability"
	redispkg "github.com/alfassih/praxis_backend/pkg/redis"
	"github.com/alfassih/praxis_backend/pkg/storage"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideEntClient),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideAuthorization),
	fx.Provide(ProvideStorage),
	fx.Provide(ProvideOTel),
)

func ProvideEntClient(lc fx.Lifecycle, cfg *config.Config) (*repo.Client, error) {
	client, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return client.Close()
		},
	})
	return client, nil
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideAuthorization(lc fx.Lifecycle, cfg *config.Config) (authorize.IAuthorization, error) {
	dsn := database.NewDSN(cfg.CasbinDatabase)
	enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, dsn)
	if err != nil {
		return nil, err
	}
	baseAuth, err := authorize.NewAuthorization(enforcer)
	if err != nil {
		cleanup(context.Background())
		return nil, err
	}

	auth := baseAuth
	if cfg.Authorization.EnableAudit {
		auth = authorize.NewAuditedAuthorization(baseAuth, slog.Default())
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("cleaning up Casbin enforcer")
			cleanup(ctx)
			return nil
		},
	})
	return auth, nil
}

func ProvideStorage(cfg *config.Config) (storage.Store, error) {
	return storage.New(cfg.Storage)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
