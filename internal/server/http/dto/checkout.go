package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest opens a checkout session. With a product id it is a buy-now
// purchase; without one the session is built from the cart.
type CheckoutRequest struct {
	ProductID *int64 `json:"product_id,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// ConfirmRequest selects the payment method for a session.
type ConfirmRequest struct {
	Method  string `json:"method"`
	Network string `json:"network,omitempty"`
}

// CheckoutItemResponse is one purchased line on the checkout screen.
type CheckoutItemResponse struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// BankDetailsResponse carries manual transfer instructions.
type BankDetailsResponse struct {
	BankID        string `json:"bank_id"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Amount        string `json:"amount"`
	Memo          string `json:"memo"`
	QRImageURL    string `json:"qr_image_url"`
}

// NetworkResponse describes one crypto payment network.
type NetworkResponse struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	QRImageURL string `json:"qr_image_url,omitempty"`
}

// ReceiptResponse is the confirmation block shown after finalization.
type ReceiptResponse struct {
	OrderID string          `json:"order_id"`
	Date    time.Time       `json:"date"`
	Total   decimal.Decimal `json:"total"`
	Method  string          `json:"method"`
}

// SessionResponse is the full checkout screen state.
type SessionResponse struct {
	ID          string                 `json:"id"`
	State       string                 `json:"state"`
	Items       []CheckoutItemResponse `json:"items"`
	Total       decimal.Decimal        `json:"total"`
	TotalLabel  string                 `json:"total_label"`
	PaymentCode string                 `json:"payment_code"`
	Method      string                 `json:"method,omitempty"`
	PayURL      string                 `json:"pay_url,omitempty"`
	Countdown   string                 `json:"countdown,omitempty"`
	VerifyError string                 `json:"verify_error,omitempty"`
	Bank        *BankDetailsResponse   `json:"bank,omitempty"`
	Networks    []NetworkResponse      `json:"networks,omitempty"`
	Receipt     *ReceiptResponse       `json:"receipt,omitempty"`
	ExpiresAt   time.Time              `json:"expires_at"`
}
