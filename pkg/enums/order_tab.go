package enums

import "fmt"

// OrderTab identifies the status-filter view the vendor console is scoped to.
type OrderTab string

const (
	OrderTabAll     OrderTab = "all"
	OrderTabNew     OrderTab = "new"
	OrderTabCooking OrderTab = "cooking"
	OrderTabPacking OrderTab = "packing"
	OrderTabReady   OrderTab = "ready"
)

var validOrderTabs = []OrderTab{
	OrderTabAll,
	OrderTabNew,
	OrderTabCooking,
	OrderTabPacking,
	OrderTabReady,
}

// Upstream status-filter values that are not order statuses themselves.
// Unconfirmed orders are served by a dedicated waiting-orders query.
const (
	StatusFilterAll     = "all"
	StatusFilterWaiting = "waiting"
)

// String implements fmt.Stringer.
func (t OrderTab) String() string {
	return string(t)
}

// IsValid reports whether the value is a known OrderTab.
func (t OrderTab) IsValid() bool {
	for _, candidate := range validOrderTabs {
		if candidate == t {
			return true
		}
	}
	return false
}

// StatusFilter maps the tab to the upstream status-filter value, 1:1.
func (t OrderTab) StatusFilter() string {
	switch t {
	case OrderTabNew:
		return StatusFilterWaiting
	case OrderTabCooking:
		return string(OrderStatusCooking)
	case OrderTabPacking:
		return string(OrderStatusPackingProcessing)
	case OrderTabReady:
		return string(OrderStatusReadyToPickup)
	default:
		return StatusFilterAll
	}
}

// ParseOrderTab converts raw input into an OrderTab, defaulting empty to all.
func ParseOrderTab(value string) (OrderTab, error) {
	if value == "" {
		return OrderTabAll, nil
	}
	for _, candidate := range validOrderTabs {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order tab %q", value)
}
