package orders

import (
	"context"
	"fmt"

	"github.com/munchbay/vendor-gateway/pkg/enums"
	pkgerrors "github.com/munchbay/vendor-gateway/pkg/errors"
	"github.com/munchbay/vendor-gateway/pkg/foodorder"
	"github.com/munchbay/vendor-gateway/pkg/logger"
)

// Platform is the slice of the food-order client the controller consumes.
type Platform interface {
	GetOrdersByStatus(ctx context.Context, restaurantID, statusFilter string) ([]foodorder.Order, error)
	GetWaitingOrders(ctx context.Context, restaurantID string) ([]foodorder.Order, error)
	GetOrderHistory(ctx context.Context, params foodorder.HistoryParams) ([]foodorder.Order, error)
	GetOrderDetails(ctx context.Context, orderID string) (*foodorder.Order, error)
	UpdateOrderStatus(ctx context.Context, params foodorder.UpdateStatusParams) (*foodorder.UpdateResult, error)
}

// Service owns the order-status workflow for one restaurant.
type Service interface {
	List(ctx context.Context, tab enums.OrderTab) ([]foodorder.Order, error)
	History(ctx context.Context, input HistoryInput) ([]foodorder.Order, error)
	Detail(ctx context.Context, orderID string) (*foodorder.Order, error)
	Transition(ctx context.Context, input TransitionInput) (*TransitionOutcome, error)
}

type service struct {
	platform     Platform
	logg         *logger.Logger
	restaurantID string
}

// ServiceParams configure the lifecycle controller. RestaurantID may be empty
// before onboarding completes; operations then no-op silently.
type ServiceParams struct {
	Platform     Platform
	Logger       *logger.Logger
	RestaurantID string
}

// NewService builds the order lifecycle controller.
func NewService(params ServiceParams) (Service, error) {
	if params.Platform == nil {
		return nil, fmt.Errorf("platform client required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		platform:     params.Platform,
		logg:         params.Logger,
		restaurantID: params.RestaurantID,
	}, nil
}

// List fetches the orders for the active tab. The platform is the sole source
// of truth; every call is a fresh fetch, never a cache read.
func (s *service) List(ctx context.Context, tab enums.OrderTab) ([]foodorder.Order, error) {
	if s.restaurantID == "" {
		s.logg.Debug(ctx, "restaurant id not configured; skipping order list")
		return []foodorder.Order{}, nil
	}
	if !tab.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid tab %q", tab))
	}
	if tab == enums.OrderTabNew {
		return s.platform.GetWaitingOrders(ctx, s.restaurantID)
	}
	return s.platform.GetOrdersByStatus(ctx, s.restaurantID, tab.StatusFilter())
}

func (s *service) History(ctx context.Context, input HistoryInput) ([]foodorder.Order, error) {
	if s.restaurantID == "" {
		s.logg.Debug(ctx, "restaurant id not configured; skipping order history")
		return []foodorder.Order{}, nil
	}
	tab := input.Tab
	if tab == "" {
		tab = enums.OrderTabAll
	}
	if !tab.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid tab %q", tab))
	}
	return s.platform.GetOrderHistory(ctx, foodorder.HistoryParams{
		RestaurantID: s.restaurantID,
		Status:       tab.StatusFilter(),
		Search:       input.Search,
		Limit:        input.Limit,
	})
}

func (s *service) Detail(ctx context.Context, orderID string) (*foodorder.Order, error) {
	return s.platform.GetOrderDetails(ctx, orderID)
}

// Transition validates the move against the live order status, issues the
// status update, and reloads the active tab once the platform acknowledges.
func (s *service) Transition(ctx context.Context, input TransitionInput) (*TransitionOutcome, error) {
	if s.restaurantID == "" {
		s.logg.Debug(ctx, "restaurant id not configured; skipping order transition")
		return &TransitionOutcome{OrderID: input.OrderID, Orders: []foodorder.Order{}}, nil
	}
	if !input.Action.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid action %q", input.Action))
	}

	order, err := s.platform.GetOrderDetails(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	target, err := ResolveTarget(input.Action, order.Status)
	if err != nil {
		return nil, err
	}

	params := foodorder.UpdateStatusParams{
		FoodOrderID: input.OrderID,
		Status:      target,
	}
	if input.Action == ActionAccept {
		minutes := input.PrepMinutes
		if minutes == 0 {
			minutes = enums.DefaultPrepMinutes
		}
		if !enums.IsValidPrepMinutes(minutes) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("preparation time %d is not an offered choice", minutes))
		}
		cookingTime := fmt.Sprintf("%d minutes", minutes)
		params.CookingTime = &cookingTime
	}

	opCtx := s.logg.WithOrderID(ctx, input.OrderID)
	if _, err := s.platform.UpdateOrderStatus(opCtx, params); err != nil {
		if pkgerrors.Is(err, pkgerrors.CodeNoCourier) {
			// The order did not advance; surface the warning without a
			// reload so the caller keeps the pre-transition view.
			s.logg.Warn(opCtx, "order has no courier assigned; transition not applied")
			return nil, err
		}
		// Partial success is possible upstream, so reconcile the active
		// tab before reporting the failure.
		if _, reloadErr := s.reload(opCtx, input.Tab); reloadErr != nil {
			s.logg.Error(opCtx, "order list reload after failed update", reloadErr)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "update order status")
	}

	orders, err := s.reload(opCtx, input.Tab)
	if err != nil {
		s.logg.Error(opCtx, "order list reload after update", err)
		orders = []foodorder.Order{}
	}
	return &TransitionOutcome{
		OrderID: input.OrderID,
		Status:  target,
		Orders:  orders,
	}, nil
}

func (s *service) reload(ctx context.Context, tab enums.OrderTab) ([]foodorder.Order, error) {
	if !tab.IsValid() {
		tab = enums.OrderTabAll
	}
	return s.List(ctx, tab)
}
