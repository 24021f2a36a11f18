package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/munchbay/vendor-gateway/api/responses"
	"github.com/munchbay/vendor-gateway/api/validators"
	internalorders "github.com/munchbay/vendor-gateway/internal/orders"
	"github.com/munchbay/vendor-gateway/pkg/enums"
	pkgerrors "github.com/munchbay/vendor-gateway/pkg/errors"
	"github.com/munchbay/vendor-gateway/pkg/logger"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type transitionRequest struct {
	Action      string `json:"action" validate:"required"`
	PrepMinutes int    `json:"prep_minutes" validate:"omitempty,min=1"`
	Tab         string `json:"tab" validate:"omitempty"`
}

// ListOrders returns the live orders for the requested tab.
func ListOrders(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		tab, err := enums.ParseOrderTab(strings.TrimSpace(r.URL.Query().Get("tab")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid tab"))
			return
		}

		orders, err := svc.List(r.Context(), tab)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders)
	}
}

// OrderHistory returns finished and in-flight orders filtered by tab and an
// optional search term.
func OrderHistory(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		tab, err := enums.ParseOrderTab(strings.TrimSpace(r.URL.Query().Get("tab")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid tab"))
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", defaultHistoryLimit, 1, maxHistoryLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orders, err := svc.History(r.Context(), internalorders.HistoryInput{
			Tab:    tab,
			Search: strings.TrimSpace(r.URL.Query().Get("search")),
			Limit:  limit,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders)
	}
}

// OrderDetail returns the full order including customer and cart items.
func OrderDetail(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		orderID := strings.TrimSpace(chi.URLParam(r, "orderID"))
		if orderID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "order id is required"))
			return
		}

		order, err := svc.Detail(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// TransitionOrder applies one workflow action to an order and returns the
// reloaded active tab alongside the new status.
func TransitionOrder(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		orderID := strings.TrimSpace(chi.URLParam(r, "orderID"))
		if orderID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "order id is required"))
			return
		}

		var req transitionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		action, err := internalorders.ParseAction(req.Action)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid action"))
			return
		}
		tab, err := enums.ParseOrderTab(strings.TrimSpace(req.Tab))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid tab"))
			return
		}

		outcome, err := svc.Transition(r.Context(), internalorders.TransitionInput{
			OrderID:     orderID,
			Action:      action,
			PrepMinutes: req.PrepMinutes,
			Tab:         tab,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, outcome)
	}
}
