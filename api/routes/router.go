package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/munchbay/vendor-gateway/api/controllers"
	"github.com/munchbay/vendor-gateway/api/middleware"
	"github.com/munchbay/vendor-gateway/internal/orders"
	"github.com/munchbay/vendor-gateway/pkg/config"
	"github.com/munchbay/vendor-gateway/pkg/logger"
	pkgredis "github.com/munchbay/vendor-gateway/pkg/redis"
)

// Deps collects everything the router hands to its handlers.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	Redis        *pkgredis.Client
	Orders       orders.Service
	Alerts       controllers.AlertSource
	PromGatherer prometheus.Gatherer
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// A nil *Client must not reach the interface-typed handler params.
	var redisPinger pkgredis.Pinger
	var idempotencyStore pkgredis.IdempotencyStore
	if deps.Redis != nil {
		redisPinger = deps.Redis
		idempotencyStore = deps.Redis
	}

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, redisPinger))
	})

	if deps.PromGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.PromGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(deps.Orders, deps.Logger))
			r.Get("/history", controllers.OrderHistory(deps.Orders, deps.Logger))
			r.Get("/{orderID}", controllers.OrderDetail(deps.Orders, deps.Logger))
			r.With(middleware.Idempotency(idempotencyStore, deps.Logger)).
				Post("/{orderID}/transition", controllers.TransitionOrder(deps.Orders, deps.Logger))
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", controllers.Alerts(deps.Alerts, deps.Logger))
			r.Post("/new-orders/ack", controllers.AckNewOrders(deps.Alerts, deps.Logger))
			r.Post("/completed-orders/ack", controllers.AckCompletedOrders(deps.Alerts, deps.Logger))
		})
	})

	return r
}
