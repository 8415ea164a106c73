// Package bank talks to the external bank transfer verification gateway.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Client exposes the bank verification operation.
type Client interface {
	Verify(ctx context.Context, paymentCode string, amountVND int64) (bool, error)
}

// HTTPClient implements Client via the gateway's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type verifyRequest struct {
	PaymentCode string `json:"payment_code"`
	Amount      int64  `json:"amount"`
}

type verifyResponse struct {
	Verified bool `json:"verified"`
}

// NewHTTPClient creates the gateway client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse bank gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("bank gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Verify asks the gateway whether a transfer carrying the memo code and the
// exact dong amount has arrived.
func (c *HTTPClient) Verify(ctx context.Context, paymentCode string, amountVND int64) (bool, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/verify")

	payload, err := json.Marshal(verifyRequest{PaymentCode: paymentCode, Amount: amountVND})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("bank verify request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return false, fmt.Errorf("bank gateway error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}
	var data verifyResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return false, err
	}
	return data.Verified, nil
}
