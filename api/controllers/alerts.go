package controllers

import (
	"net/http"

	"github.com/munchbay/vendor-gateway/api/responses"
	"github.com/munchbay/vendor-gateway/internal/monitor"
	pkgerrors "github.com/munchbay/vendor-gateway/pkg/errors"
	"github.com/munchbay/vendor-gateway/pkg/logger"
)

// AlertSource exposes the monitor state the console polls for.
type AlertSource interface {
	Snapshot() monitor.Snapshot
	AckNewOrders() monitor.Snapshot
	AckCompletedOrders() monitor.Snapshot
}

// Alerts returns the current activity flags and counters.
func Alerts(source AlertSource, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if source == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "monitor unavailable"))
			return
		}
		responses.WriteSuccess(w, source.Snapshot())
	}
}

// AckNewOrders clears the new-orders flag and returns the resulting state.
func AckNewOrders(source AlertSource, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if source == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "monitor unavailable"))
			return
		}
		responses.WriteSuccess(w, source.AckNewOrders())
	}
}

// AckCompletedOrders clears the completed-orders flag and returns the
// resulting state.
func AckCompletedOrders(source AlertSource, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if source == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "monitor unavailable"))
			return
		}
		responses.WriteSuccess(w, source.AckCompletedOrders())
	}
}
