package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/munchbay/vendor-gateway/pkg/enums"
	"github.com/munchbay/vendor-gateway/pkg/foodorder"
	"github.com/munchbay/vendor-gateway/pkg/logger"
)

// Platform is the slice of the food-order client the monitor consumes.
type Platform interface {
	GetOrdersByStatus(ctx context.Context, restaurantID, statusFilter string) ([]foodorder.Order, error)
	GetWaitingOrders(ctx context.Context, restaurantID string) ([]foodorder.Order, error)
}

// Snapshot is the externally visible monitor state at one point in time.
type Snapshot struct {
	CurrentCompletedCount  int       `json:"current_completed_count"`
	PreviousCompletedCount int       `json:"previous_completed_count"`
	CurrentNewOrdersCount  int       `json:"current_new_orders_count"`
	PreviousNewOrdersCount int       `json:"previous_new_orders_count"`
	HasNewCompletedOrders  bool      `json:"has_new_completed_orders"`
	HasNewOrders           bool      `json:"has_new_orders"`
	LastCheckedAt          time.Time `json:"last_checked_at"`
	LastPolledAt           time.Time `json:"last_polled_at"`
}

// Monitor samples order counts and raises transient activity flags. Counters
// are in-memory only; a restart establishes a fresh baseline silently.
type Monitor struct {
	platform     Platform
	logg         *logger.Logger
	restaurantID string
	now          func() time.Time

	mu    sync.Mutex
	state Snapshot
}

// Params configure the monitor. RestaurantID may be empty; polling then idles
// until the process is restarted with one configured.
type Params struct {
	Platform     Platform
	Logger       *logger.Logger
	RestaurantID string
}

// New builds an order-activity monitor with zeroed baselines.
func New(params Params) (*Monitor, error) {
	if params.Platform == nil {
		return nil, fmt.Errorf("platform client required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Monitor{
		platform:     params.Platform,
		logg:         params.Logger,
		restaurantID: params.RestaurantID,
		now:          time.Now,
	}, nil
}

// PollOnce runs one fetch-compare-update cycle. The two fetches race
// independently and are joined before any comparison, so their relative
// completion order never matters. A failed fetch leaves every counter
// untouched; the caller simply retries on its next tick.
func (m *Monitor) PollOnce(ctx context.Context) error {
	if m.restaurantID == "" {
		m.logg.Debug(ctx, "restaurant id not configured; monitor idle")
		return nil
	}

	var allOrders, waitingOrders []foodorder.Order
	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders, err := m.platform.GetOrdersByStatus(groupCtx, m.restaurantID, enums.StatusFilterAll)
		if err != nil {
			return fmt.Errorf("fetch all orders: %w", err)
		}
		allOrders = orders
		return nil
	})
	g.Go(func() error {
		orders, err := m.platform.GetWaitingOrders(groupCtx, m.restaurantID)
		if err != nil {
			return fmt.Errorf("fetch waiting orders: %w", err)
		}
		waitingOrders = orders
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	completedCount := 0
	for _, order := range allOrders {
		if order.Status == enums.OrderStatusCompleted {
			completedCount++
		}
	}
	newOrdersCount := len(waitingOrders)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.CurrentCompletedCount = completedCount
	m.state.CurrentNewOrdersCount = newOrdersCount

	// The completed-orders alert is guarded against a zero baseline so the
	// first poll after startup stays silent; the new-orders alert carries no
	// such guard and fires from zero. The asymmetry is the contract the
	// console depends on, not an oversight to repair here.
	m.state.HasNewCompletedOrders = completedCount > m.state.PreviousCompletedCount &&
		m.state.PreviousCompletedCount > 0
	m.state.HasNewOrders = newOrdersCount > m.state.PreviousNewOrdersCount

	// Baselines advance on every successful cycle, raised flag or not.
	m.state.PreviousCompletedCount = completedCount
	m.state.PreviousNewOrdersCount = newOrdersCount
	m.state.LastPolledAt = m.now()

	return nil
}

// Snapshot returns a copy of the current monitor state.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// AckNewOrders clears the new-orders flag without touching any counter or
// baseline; a later cycle re-raises it if counts grow further.
func (m *Monitor) AckNewOrders() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.HasNewOrders = false
	m.state.LastCheckedAt = m.now()
	return m.state
}

// AckCompletedOrders clears the completed-orders flag, counters untouched.
func (m *Monitor) AckCompletedOrders() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.HasNewCompletedOrders = false
	m.state.LastCheckedAt = m.now()
	return m.state
}
