// Package binance talks to the Binance Pay integration service that owns
// remote payment orders.
package binance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
)

// ErrOrderNotFound indicates the provider doesn't know the remote order.
var ErrOrderNotFound = errors.New("remote order not found")

// Client exposes remote order operations.
type Client interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, productName string) (*model.RemoteOrder, error)
	OrderStatus(ctx context.Context, orderID string) (model.RemoteOrderStatus, error)
}

// HTTPClient implements Client via HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type createRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	ProductName string          `json:"product_name"`
}

type orderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	PayURL  string `json:"pay_url,omitempty"`
}

// NewHTTPClient creates Binance Pay client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse binance url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("binance url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateOrder registers a payment order with the provider.
func (c *HTTPClient) CreateOrder(ctx context.Context, amount decimal.Decimal, productName string) (*model.RemoteOrder, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/orders")

	payload, err := json.Marshal(createRequest{Amount: amount, ProductName: productName})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("binance order create failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("binance error: %s", resp.Status)
	}

	var data orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if data.OrderID == "" {
		return nil, fmt.Errorf("binance response missing order id")
	}
	status := model.RemoteOrderStatus(data.Status)
	if status == "" {
		status = model.RemoteOrderStatusCreated
	}
	return &model.RemoteOrder{ID: data.OrderID, Status: status, PayURL: data.PayURL}, nil
}

// OrderStatus polls the provider for the order state.
func (c *HTTPClient) OrderStatus(ctx context.Context, orderID string) (model.RemoteOrderStatus, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/orders/", orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data orderResponse
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return "", err
		}
		return model.RemoteOrderStatus(data.Status), nil
	case http.StatusNotFound:
		return "", ErrOrderNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("binance status request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("binance error: %s", resp.Status)
	}
}
