package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/acarrillodev/wishtrack-backend/api/controllers"
	"github.com/acarrillodev/wishtrack-backend/api/middleware"
	"github.com/acarrillodev/wishtrack-backend/internal/auth"
	"github.com/acarrillodev/wishtrack-backend/internal/doubts"
	"github.com/acarrillodev/wishtrack-backend/internal/gifts"
	"github.com/acarrillodev/wishtrack-backend/internal/groups"
	"github.com/acarrillodev/wishtrack-backend/internal/records"
	"github.com/acarrillodev/wishtrack-backend/internal/tags"
	"github.com/acarrillodev/wishtrack-backend/internal/users"
	"github.com/acarrillodev/wishtrack-backend/internal/wishes"
	"github.com/acarrillodev/wishtrack-backend/pkg/auth/session"
	"github.com/acarrillodev/wishtrack-backend/pkg/config"
	"github.com/acarrillodev/wishtrack-backend/pkg/db"
	"github.com/acarrillodev/wishtrack-backend/pkg/logger"
	"github.com/acarrillodev/wishtrack-backend/pkg/metrics"
	"github.com/acarrillodev/wishtrack-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	Redis       *redis.Client
	Sessions    session.AccessSessionChecker
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics

	Auth    auth.Service
	Users   users.Service
	Wishes  wishes.Service
	Gifts   gifts.Service
	Groups  groups.Service
	Records records.Service
	Tags    tags.Service
	Doubts  doubts.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.Auth, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).Post("/register", controllers.AuthRegister(deps.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.Auth, logg))
		r.With(middleware.Auth(cfg.JWT, deps.Sessions, logg)).Post("/logout", controllers.AuthLogout(deps.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

		r.Route("/users/me", func(r chi.Router) {
			r.Get("/", controllers.ProfileGet(deps.Users, logg))
			r.Put("/", controllers.ProfileUpdate(deps.Users, logg))
		})

		r.Route("/wishes", func(r chi.Router) {
			r.Get("/", controllers.WishesList(deps.Wishes, logg))
			r.Post("/", controllers.WishCreate(deps.Wishes, logg))
			r.Patch("/{wishId}", controllers.WishUpdate(deps.Wishes, logg))
			r.Delete("/{wishId}", controllers.WishDelete(deps.Wishes, logg))
		})

		r.Route("/gifts", func(r chi.Router) {
			r.Get("/", controllers.GiftsList(deps.Gifts, logg))
			r.Post("/", controllers.GiftCreate(deps.Gifts, logg))
			r.Patch("/{giftId}", controllers.GiftUpdate(deps.Gifts, logg))
			r.Delete("/{giftId}", controllers.GiftDelete(deps.Gifts, logg))
		})

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", controllers.GroupsList(deps.Groups, logg))
			r.Post("/", controllers.GroupCreate(deps.Groups, logg))
			r.Patch("/{groupId}", controllers.GroupUpdate(deps.Groups, logg))
			r.Delete("/{groupId}", controllers.GroupDelete(deps.Groups, logg))
		})

		r.Route("/records", func(r chi.Router) {
			r.Get("/", controllers.RecordsList(deps.Records, logg))
			r.Post("/", controllers.RecordCreate(deps.Records, logg))
			r.Patch("/{recordId}", controllers.RecordUpdate(deps.Records, logg))
			r.Delete("/{recordId}", controllers.RecordDelete(deps.Records, logg))
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", controllers.TagsList(deps.Tags, logg))
			r.Post("/", controllers.TagCreate(deps.Tags, logg))
			r.Patch("/{tagId}", controllers.TagUpdate(deps.Tags, logg))
			r.Delete("/{tagId}", controllers.TagDelete(deps.Tags, logg))
		})

		r.Route("/doubts", func(r chi.Router) {
			r.Get("/", controllers.DoubtsList(deps.Doubts, logg))
			r.Post("/", controllers.DoubtCreate(deps.Doubts, logg))
			r.Patch("/{doubtId}", controllers.DoubtUpdate(deps.Doubts, logg))
			r.Post("/{doubtId}/resolve", controllers.DoubtResolve(deps.Doubts, logg))
			r.Delete("/{doubtId}", controllers.DoubtDelete(deps.Doubts, logg))
		})
	})

	return r
}
