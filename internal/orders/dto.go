package orders

import (
	"github.com/munchbay/vendor-gateway/pkg/enums"
	"github.com/munchbay/vendor-gateway/pkg/foodorder"
)

// HistoryInput filters the order-history listing.
type HistoryInput struct {
	Tab    enums.OrderTab
	Search string
	Limit  int
}

// TransitionInput captures one workflow command against a single order.
type TransitionInput struct {
	OrderID string
	Action  Action
	// PrepMinutes only applies to accept; zero selects the default choice.
	PrepMinutes int
	// Tab scopes the list reload issued after the platform acknowledges.
	Tab enums.OrderTab
}

// TransitionOutcome reports the applied move plus the reloaded active tab.
type TransitionOutcome struct {
	OrderID string            `json:"order_id"`
	Status  enums.OrderStatus `json:"status"`
	Orders  []foodorder.Order `json:"orders"`
}
