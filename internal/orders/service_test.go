package orders

import (
	"context"
	"io"
	"testing"

	"github.com/munchbay/vendor-gateway/pkg/enums"
	pkgerrors "github.com/munchbay/vendor-gateway/pkg/errors"
	"github.com/munchbay/vendor-gateway/pkg/foodorder"
	"github.com/munchbay/vendor-gateway/pkg/logger"
)

type fakePlatform struct {
	orders        map[string]*foodorder.Order
	byStatus      []foodorder.Order
	waiting       []foodorder.Order
	history       []foodorder.Order
	updateErr     error
	updateCalls   []foodorder.UpdateStatusParams
	byStatusCalls []string
	waitingCalls  int
	historyCalls  []foodorder.HistoryParams
}

func (f *fakePlatform) GetOrdersByStatus(ctx context.Context, restaurantID, statusFilter string) ([]foodorder.Order, error) {
	f.byStatusCalls = append(f.byStatusCalls, statusFilter)
	return f.byStatus, nil
}

func (f *fakePlatform) GetWaitingOrders(ctx context.Context, restaurantID string) ([]foodorder.Order, error) {
	f.waitingCalls++
	return f.waiting, nil
}

func (f *fakePlatform) GetOrderHistory(ctx context.Context, params foodorder.HistoryParams) ([]foodorder.Order, error) {
	f.historyCalls = append(f.historyCalls, params)
	return f.history, nil
}

func (f *fakePlatform) GetOrderDetails(ctx context.Context, orderID string) (*foodorder.Order, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

func (f *fakePlatform) UpdateOrderStatus(ctx context.Context, params foodorder.UpdateStatusParams) (*foodorder.UpdateResult, error) {
	f.updateCalls = append(f.updateCalls, params)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &foodorder.UpdateResult{StatusCode: 200, Message: "ok"}, nil
}

func newTestService(t *testing.T, platform *fakePlatform, restaurantID string) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Platform:     platform,
		Logger:       logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		RestaurantID: restaurantID,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func waitingOrder(id string) *foodorder.Order {
	return &foodorder.Order{ID: id, Status: enums.OrderStatusWaitingForConfirmation}
}

func TestTransitionAcceptFormatsCookingTime(t *testing.T) {
	platform := &fakePlatform{orders: map[string]*foodorder.Order{"ord-1": waitingOrder("ord-1")}}
	svc := newTestService(t, platform, "rest-42")

	outcome, err := svc.Transition(context.Background(), TransitionInput{
		OrderID:     "ord-1",
		Action:      ActionAccept,
		PrepMinutes: 25,
		Tab:         enums.OrderTabNew,
	})
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if outcome.Status != enums.OrderStatusCooking {
		t.Fatalf("unexpected target %s", outcome.Status)
	}
	if len(platform.updateCalls) != 1 {
		t.Fatalf("expected one update, got %d", len(platform.updateCalls))
	}
	call := platform.updateCalls[0]
	if call.CookingTime == nil || *call.CookingTime != "25 minutes" {
		t.Fatalf("unexpected cooking time %v", call.CookingTime)
	}
	if platform.waitingCalls != 1 {
		t.Fatalf("expected active-tab reload, waiting calls=%d", platform.waitingCalls)
	}
}

func TestTransitionAcceptDefaultsPrepTime(t *testing.T) {
	platform := &fakePlatform{orders: map[string]*foodorder.Order{"ord-1": waitingOrder("ord-1")}}
	svc := newTestService(t, platform, "rest-42")

	if _, err := svc.Transition(context.Background(), TransitionInput{
		OrderID: "ord-1",
		Action:  ActionAccept,
		Tab:     enums.OrderTabNew,
	}); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	call := platform.updateCalls[0]
	if call.CookingTime == nil || *call.CookingTime != "20 minutes" {
		t.Fatalf("expected default 20 minutes, got %v", call.CookingTime)
	}
}

func TestTransitionAcceptRejectsOffMenuPrepTime(t *testing.T) {
	platform := &fakePlatform{orders: map[string]*foodorder.Order{"ord-1": waitingOrder("ord-1")}}
	svc := newTestService(t, platform, "rest-42")

	_, err := svc.Transition(context.Background(), TransitionInput{
		OrderID:     "ord-1",
		Action:      ActionAccept,
		PrepMinutes: 33,
		Tab:         enums.OrderTabNew,
	})
	if !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(platform.updateCalls) != 0 {
		t.Fatal("no update should be issued for an invalid prep time")
	}
}

func TestTransitionOmitsCookingTimeOutsideAccept(t *testing.T) {
	platform := &fakePlatform{orders: map[string]*foodorder.Order{
		"ord-2": {ID: "ord-2", Status: enums.OrderStatusCooking},
	}}
	svc := newTestService(t, platform, "rest-42")

	outcome, err := svc.Transition(context.Background(), TransitionInput{
		OrderID: "ord-2",
		Action:  ActionMarkPacked,
		Tab:     enums.OrderTabCooking,
	})
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if outcome.Status != enums.OrderStatusPackingProcessing {
		t.Fatalf("unexpected target %s", outcome.Status)
	}
	if platform.updateCalls[0].CookingTime != nil {
		t.Fatal("cooking_time must be absent outside the accept edge")
	}
}

func TestTransitionIllegalActionIsStateConflict(t *testing.T) {
	platform := &fakePlatform{orders: map[string]*foodorder.Order{"ord-1": waitingOrder("ord-1")}}
	svc := newTestService(t, platform, "rest-42")

	_, err := svc.Transition(context.Background(), TransitionInput{
		OrderID: "ord-1",
		Action:  ActionMarkReady,
		Tab:     enums.OrderTabNew,
	})
	if !pkgerrors.Is(err, pkgerrors.CodeStateConflict) {
		t.Fatalf("expected state conflict, got %v", err)
	}
	if len(platform.updateCalls) != 0 {
		t.Fatal("no update should be issued for an illegal move")
	}
}

func TestTransitionNoCourierSkipsReload(t *testing.T) {
	platform := &fakePlatform{
		orders:    map[string]*foodorder.Order{"ord-3": {ID: "ord-3", Status: enums.OrderStatusPackingProcessing}},
		updateErr: pkgerrors.New(pkgerrors.CodeNoCourier, "no courier assigned to this order yet"),
	}
	svc := newTestService(t, platform, "rest-42")

	_, err := svc.Transition(context.Background(), TransitionInput{
		OrderID: "ord-3",
		Action:  ActionMarkReady,
		Tab:     enums.OrderTabPacking,
	})
	if !pkgerrors.Is(err, pkgerrors.CodeNoCourier) {
		t.Fatalf("expected no-courier error, got %v", err)
	}
	if len(platform.byStatusCalls) != 0 || platform.waitingCalls != 0 {
		t.Fatal("no-courier rejection must not reload the list")
	}
}

func TestTransitionGenericFailureStillReloads(t *testing.T) {
	platform := &fakePlatform{
		orders:    map[string]*foodorder.Order{"ord-3": {ID: "ord-3", Status: enums.OrderStatusPackingProcessing}},
		updateErr: pkgerrors.New(pkgerrors.CodeUpstream, "platform returned 500"),
	}
	svc := newTestService(t, platform, "rest-42")

	_, err := svc.Transition(context.Background(), TransitionInput{
		OrderID: "ord-3",
		Action:  ActionMarkReady,
		Tab:     enums.OrderTabPacking,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if pkgerrors.Is(err, pkgerrors.CodeNoCourier) {
		t.Fatalf("unexpected no-courier mapping: %v", err)
	}
	if len(platform.byStatusCalls) != 1 {
		t.Fatalf("generic failure must still reload the list, got %d reloads", len(platform.byStatusCalls))
	}
}

func TestTransitionWithoutRestaurantIDSilentlyNoops(t *testing.T) {
	platform := &fakePlatform{orders: map[string]*foodorder.Order{"ord-1": waitingOrder("ord-1")}}
	svc := newTestService(t, platform, "")

	outcome, err := svc.Transition(context.Background(), TransitionInput{
		OrderID: "ord-1",
		Action:  ActionAccept,
		Tab:     enums.OrderTabNew,
	})
	if err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if len(platform.updateCalls) != 0 {
		t.Fatal("no update should be issued without a restaurant id")
	}
	if len(outcome.Orders) != 0 {
		t.Fatalf("expected empty reload, got %+v", outcome.Orders)
	}
}

func TestListRoutesNewTabToWaitingOrders(t *testing.T) {
	platform := &fakePlatform{waiting: []foodorder.Order{{ID: "w-1"}}}
	svc := newTestService(t, platform, "rest-42")

	orders, err := svc.List(context.Background(), enums.OrderTabNew)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if platform.waitingCalls != 1 || len(platform.byStatusCalls) != 0 {
		t.Fatal("new tab must use the waiting-orders query")
	}
	if len(orders) != 1 || orders[0].ID != "w-1" {
		t.Fatalf("unexpected orders %+v", orders)
	}
}

func TestListMapsTabToStatusFilter(t *testing.T) {
	platform := &fakePlatform{}
	svc := newTestService(t, platform, "rest-42")

	for tab, filter := range map[enums.OrderTab]string{
		enums.OrderTabAll:     "all",
		enums.OrderTabCooking: "cooking",
		enums.OrderTabPacking: "packing_processing",
		enums.OrderTabReady:   "ready_to_pickup",
	} {
		platform.byStatusCalls = nil
		if _, err := svc.List(context.Background(), tab); err != nil {
			t.Fatalf("List(%s): %v", tab, err)
		}
		if len(platform.byStatusCalls) != 1 || platform.byStatusCalls[0] != filter {
			t.Fatalf("tab %s sent filter %v, want %s", tab, platform.byStatusCalls, filter)
		}
	}
}

func TestHistoryPassesFilters(t *testing.T) {
	platform := &fakePlatform{}
	svc := newTestService(t, platform, "rest-42")

	if _, err := svc.History(context.Background(), HistoryInput{
		Tab:    enums.OrderTabReady,
		Search: "A-1001",
		Limit:  25,
	}); err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(platform.historyCalls) != 1 {
		t.Fatalf("expected one history call, got %d", len(platform.historyCalls))
	}
	call := platform.historyCalls[0]
	if call.Status != "ready_to_pickup" || call.Search != "A-1001" || call.Limit != 25 {
		t.Fatalf("unexpected history params %+v", call)
	}
}
