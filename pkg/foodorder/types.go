package foodorder

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/munchbay/vendor-gateway/pkg/enums"
)

// Order is a customer purchase as served by the platform API. The platform
// owns the record; the gateway only reads it and requests status transitions.
type Order struct {
	// ID is the opaque identifier used in API calls. DisplayID is the
	// human-readable order number shown on receipts.
	ID          string            `json:"id"`
	DisplayID   string            `json:"order_id"`
	Status      enums.OrderStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Customer    Customer          `json:"customer"`
	CartItems   []CartItem        `json:"cart_items"`
}

// Customer carries the purchaser details attached to an order.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CartItem is one purchased line on an order.
type CartItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// HistoryParams filter the order-history query.
type HistoryParams struct {
	RestaurantID string
	Status       string
	Search       string
	Limit        int
}

// UpdateStatusParams describe one status-update command.
type UpdateStatusParams struct {
	FoodOrderID string
	Status      enums.OrderStatus
	// CookingTime is the preformatted "<N> minutes" string; nil omits the
	// field entirely, which the platform requires outside the accept edge.
	CookingTime *string
}

// UpdateResult is the platform acknowledgement for a status update.
type UpdateResult struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

type ordersByStatusRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Status       string `json:"status"`
}

type waitingOrdersRequest struct {
	RestaurantID string `json:"restaurant_id"`
}

type orderHistoryRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Status       string `json:"status"`
	Search       string `json:"search,omitempty"`
	Limit        int    `json:"limit"`
}

type orderDetailsRequest struct {
	OrderID string `json:"order_id"`
}

type updateStatusRequest struct {
	FoodOrderID string  `json:"food_order_id"`
	Status      string  `json:"status"`
	CookingTime *string `json:"cooking_time,omitempty"`
}

// The platform double-wraps every payload as {"data":{"data":...}}.
type orderListEnvelope struct {
	Data *orderListPayload `json:"data"`
}

type orderListPayload struct {
	Data []Order `json:"data"`
}

type orderDetailEnvelope struct {
	Data *orderDetailPayload `json:"data"`
}

type orderDetailPayload struct {
	Data *Order `json:"data"`
}

type updateStatusEnvelope struct {
	Data *UpdateResult `json:"data"`
}
