package foodorder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/munchbay/vendor-gateway/pkg/errors"
)

const (
	ordersByStatusPath = "/food-order/get-order-by-status"
	waitingOrdersPath  = "/food-order/get-waiting-order"
	orderHistoryPath   = "/food-order/get-order-history"
	orderDetailsPath   = "/food-order/get-order-id-wise-details"
	updateStatusPath   = "/food-order/update-order-status"

	// Status code the platform returns in the update acknowledgement when
	// no courier has been assigned to the order yet.
	noCourierStatusCode = 404

	defaultHistoryLimit = 50

	errorBodyReadLimit int64 = 1024
)

var errBaseURLRequired = errors.New("food-order base url is required")

// Client wraps the food-order platform REST API consumed by the vendor console.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds the platform client given its base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// GetOrdersByStatus fetches the orders scoped to one status filter, where
// filter is "all" or a concrete status value.
func (c *Client) GetOrdersByStatus(ctx context.Context, restaurantID, statusFilter string) ([]Order, error) {
	if strings.TrimSpace(restaurantID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id is required")
	}
	req := ordersByStatusRequest{RestaurantID: restaurantID, Status: statusFilter}

	var envelope orderListEnvelope
	if err := c.post(ctx, ordersByStatusPath, req, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, malformedPayload(ordersByStatusPath)
	}
	return envelope.Data.Data, nil
}

// GetWaitingOrders fetches the orders still waiting for vendor confirmation.
func (c *Client) GetWaitingOrders(ctx context.Context, restaurantID string) ([]Order, error) {
	if strings.TrimSpace(restaurantID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id is required")
	}

	var envelope orderListEnvelope
	if err := c.post(ctx, waitingOrdersPath, waitingOrdersRequest{RestaurantID: restaurantID}, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, malformedPayload(waitingOrdersPath)
	}
	return envelope.Data.Data, nil
}

// GetOrderHistory fetches archived orders with optional search.
func (c *Client) GetOrderHistory(ctx context.Context, params HistoryParams) ([]Order, error) {
	if strings.TrimSpace(params.RestaurantID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id is required")
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	req := orderHistoryRequest{
		RestaurantID: params.RestaurantID,
		Status:       params.Status,
		Search:       strings.TrimSpace(params.Search),
		Limit:        limit,
	}

	var envelope orderListEnvelope
	if err := c.post(ctx, orderHistoryPath, req, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, malformedPayload(orderHistoryPath)
	}
	return envelope.Data.Data, nil
}

// GetOrderDetails fetches one order by its opaque identifier.
func (c *Client) GetOrderDetails(ctx context.Context, orderID string) (*Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}

	var envelope orderDetailEnvelope
	if err := c.post(ctx, orderDetailsPath, orderDetailsRequest{OrderID: orderID}, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil || envelope.Data.Data == nil {
		return nil, malformedPayload(orderDetailsPath)
	}
	return envelope.Data.Data, nil
}

// UpdateOrderStatus issues one status-update command. A platform
// acknowledgement carrying the no-courier status code is mapped to
// CodeNoCourier so callers can branch without inspecting raw payloads.
func (c *Client) UpdateOrderStatus(ctx context.Context, params UpdateStatusParams) (*UpdateResult, error) {
	if strings.TrimSpace(params.FoodOrderID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "food order id is required")
	}
	if !params.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid target status %q", params.Status))
	}
	req := updateStatusRequest{
		FoodOrderID: params.FoodOrderID,
		Status:      params.Status.String(),
		CookingTime: params.CookingTime,
	}

	var envelope updateStatusEnvelope
	if err := c.post(ctx, updateStatusPath, req, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, malformedPayload(updateStatusPath)
	}
	if envelope.Data.StatusCode == noCourierStatusCode {
		return nil, pkgerrors.New(pkgerrors.CodeNoCourier, "no courier assigned to this order yet").
			WithDetails(map[string]any{"order_id": params.FoodOrderID, "message": envelope.Data.Message})
	}
	return envelope.Data, nil
}

func (c *Client) post(ctx context.Context, path string, body any, dest any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "call food-order platform")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return pkgerrors.New(pkgerrors.CodeUpstream, fmt.Sprintf("platform returned %d", resp.StatusCode)).
			WithDetails(map[string]any{"path": path, "body": string(snippet)})
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode response").
			WithDetails(map[string]any{"path": path})
	}
	return nil
}

func malformedPayload(path string) error {
	return pkgerrors.New(pkgerrors.CodeUpstream, "malformed platform payload").
		WithDetails(map[string]any{"path": path})
}
