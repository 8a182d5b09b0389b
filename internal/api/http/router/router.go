package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/alfassih/praxis_backend/config"
	"github.com/alfassih/praxis_backend/internal/api/http/handler"
	"github.com/alfassih/praxis_backend/internal/api/http/middleware"
	"github.com/alfassih/praxis_backend/internal/service/admin"
	"github.com/alfassih/praxis_backend/internal/service/auth"
	"github.com/alfassih/praxis_backend/internal/service/document"
	"github.com/alfassih/praxis_backend/internal/service/patient"
	"github.com/alfassih/praxis_backend/internal/service/session"
	"github.com/alfassih/praxis_backend/internal/service/therapist"
	"github.com/alfassih/praxis_backend/internal/service/user"
	"github.com/alfassih/praxis_backend/pkg/authorize"
	pasetotoken "github.com/alfassih/praxis_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	Redis        *redis.Client
	Auth         authorize.IAuthorization
	AuthSvc      auth.Service
	UserSvc      user.Service
	PatientSvc   patient.Service
	DocumentSvc  document.Service
	SessionSvc   session.Service
	TherapistSvc therapist.Service
	AdminSvc     admin.Service
	PasetoMgr    *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	documentH := handler.NewDocumentHandler(r.p.DocumentSvc)
	sessionH := handler.NewSessionHandler(r.p.SessionSvc)
	therapistH := handler.NewTherapistHandler(r.p.TherapistSvc)
	adminH := handler.NewAdminHandler(r.p.AdminSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requirePerm)
	r.registerPatientRoutes(api, patientH, documentH, sessionH, authRequired, requirePerm)
	r.registerDocumentRoutes(api, documentH, authRequired, requirePerm)
	r.registerSessionRoutes(api, sessionH, authRequired, requirePerm)
	r.registerTherapistRoutes(api, therapistH, authRequired, requirePerm)
	r.registerAdminRoutes(api, adminH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
