package enums

import "testing"

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("packing_processing")
	if err != nil {
		t.Fatalf("ParseOrderStatus: %v", err)
	}
	if status != OrderStatusPackingProcessing {
		t.Fatalf("unexpected status %s", status)
	}

	if _, err := ParseOrderStatus("baking"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusCompleted, OrderStatusDeclined} {
		if !status.IsTerminal() {
			t.Fatalf("%s should be terminal", status)
		}
	}
	for _, status := range []OrderStatus{
		OrderStatusWaitingForConfirmation,
		OrderStatusCooking,
		OrderStatusPackingProcessing,
		OrderStatusReadyToPickup,
	} {
		if status.IsTerminal() {
			t.Fatalf("%s should not be terminal", status)
		}
	}
}

func TestOrderTabStatusFilterMapping(t *testing.T) {
	cases := map[OrderTab]string{
		OrderTabAll:     StatusFilterAll,
		OrderTabNew:     StatusFilterWaiting,
		OrderTabCooking: "cooking",
		OrderTabPacking: "packing_processing",
		OrderTabReady:   "ready_to_pickup",
	}
	for tab, want := range cases {
		if got := tab.StatusFilter(); got != want {
			t.Fatalf("tab %s mapped to %q, want %q", tab, got, want)
		}
	}
}

func TestParseOrderTabDefaultsToAll(t *testing.T) {
	tab, err := ParseOrderTab("")
	if err != nil {
		t.Fatalf("ParseOrderTab: %v", err)
	}
	if tab != OrderTabAll {
		t.Fatalf("expected all, got %s", tab)
	}
	if _, err := ParseOrderTab("archived"); err == nil {
		t.Fatal("expected error for unknown tab")
	}
}

func TestPrepTimeChoices(t *testing.T) {
	if !IsValidPrepMinutes(DefaultPrepMinutes) {
		t.Fatal("default prep time must be a valid choice")
	}
	if IsValidPrepMinutes(35) {
		t.Fatal("35 minutes is not an offered choice")
	}
}
