package controllers

import (
	"net/http"

	"github.com/acarrillodev/wishtrack-backend/api/responses"
	"github.com/acarrillodev/wishtrack-backend/pkg/config"
	"github.com/acarrillodev/wishtrack-backend/pkg/db"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
	"github.com/acarrillodev/wishtrack-backend/pkg/logger"
)

const envHeader = "X-WishTrack-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness only when the database and Redis answer.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
		}
		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
