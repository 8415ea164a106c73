package binance

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("relative/path", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Amount      decimal.Decimal `json:"amount"`
			ProductName string          `json:"product_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if !req.Amount.Equal(decimal.RequireFromString("129")) {
			t.Errorf("unexpected amount %s", req.Amount)
		}
		if req.ProductName != "Scripting Course" {
			t.Errorf("unexpected product name %q", req.ProductName)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"order_id": "bp-123",
			"status":   "CREATED",
			"pay_url":  "https://pay.example.com/bp-123",
		})
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	order, err := client.CreateOrder(context.Background(), decimal.NewFromInt(129), "Scripting Course")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "bp-123" {
		t.Fatalf("unexpected order id %q", order.ID)
	}
	if order.Status != model.RemoteOrderStatusCreated {
		t.Fatalf("unexpected status %s", order.Status)
	}
	if order.PayURL != "https://pay.example.com/bp-123" {
		t.Fatalf("unexpected pay url %q", order.PayURL)
	}
}

func TestCreateOrderMissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "CREATED"})
	}))
	defer server.Close()

	client, _ := NewHTTPClient(server.URL, testLogger())
	if _, err := client.CreateOrder(context.Background(), decimal.NewFromInt(1), "x"); err == nil {
		t.Fatal("expected error for response without order id")
	}
}

func TestOrderStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders/bp-123" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"order_id": "bp-123", "status": "PAID"})
	}))
	defer server.Close()

	client, _ := NewHTTPClient(server.URL, testLogger())
	status, err := client.OrderStatus(context.Background(), "bp-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != model.RemoteOrderStatusPaid {
		t.Fatalf("expected PAID, got %s", status)
	}
}

func TestOrderStatusNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, _ := NewHTTPClient(server.URL, testLogger())
	if _, err := client.OrderStatus(context.Background(), "ghost"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderStatusServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, _ := NewHTTPClient(server.URL, testLogger())
	if _, err := client.OrderStatus(context.Background(), "bp-123"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
