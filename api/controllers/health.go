package controllers

import (
	"net/http"

	"github.com/munchbay/vendor-gateway/api/responses"
	"github.com/munchbay/vendor-gateway/pkg/config"
	pkgerrors "github.com/munchbay/vendor-gateway/pkg/errors"
	"github.com/munchbay/vendor-gateway/pkg/logger"
	pkgredis "github.com/munchbay/vendor-gateway/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MunchBay-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, redisClient pkgredis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MunchBay-Env", cfg.App.Env)

		if redisClient != nil {
			if err := redisClient.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "redis not ready"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
