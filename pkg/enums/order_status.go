package enums

import "fmt"

// OrderStatus tracks the lifecycle of a food order on the vendor side.
type OrderStatus string

const (
	OrderStatusWaitingForConfirmation OrderStatus = "waiting_for_confirmation"
	OrderStatusCooking                OrderStatus = "cooking"
	OrderStatusPackingProcessing      OrderStatus = "packing_processing"
	OrderStatusReadyToPickup          OrderStatus = "ready_to_pickup"
	OrderStatusCompleted              OrderStatus = "completed"
	OrderStatusDeclined               OrderStatus = "declined"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusWaitingForConfirmation,
	OrderStatusCooking,
	OrderStatusPackingProcessing,
	OrderStatusReadyToPickup,
	OrderStatusCompleted,
	OrderStatusDeclined,
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further vendor action can move the order.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusDeclined
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
