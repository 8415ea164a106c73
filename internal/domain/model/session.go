package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionState describes checkout session lifecycle.
type SessionState string

const (
	SessionStateOpen      SessionState = "OPEN"
	SessionStateVerifying SessionState = "VERIFYING"
	SessionStateCompleted SessionState = "COMPLETED"
	// SessionStateNeedsSupport marks the case where payment was confirmed but
	// the order record could not be created. Distinct from any "not paid"
	// outcome so support escalation is unambiguous.
	SessionStateNeedsSupport SessionState = "NEEDS_SUPPORT"
)

// CheckoutItem is a snapshot of a purchased product taken when the session is created.
type CheckoutItem struct {
	ProductID int64
	Title     string
	Price     decimal.Decimal
	Quantity  int
}

// Receipt carries the confirmation view data produced after finalization.
type Receipt struct {
	OrderID string
	Date    time.Time
	Total   decimal.Decimal
	Method  string
}

// CheckoutSession aggregates cart items, total and the payment memo code for
// one checkout. Sessions are transient: they live in memory for the duration
// of the purchase and are evicted on completion or TTL expiry.
type CheckoutSession struct {
	ID            string
	UserID        int64
	Items         []CheckoutItem
	Total         decimal.Decimal
	PaymentCode   string
	FromCart      bool
	State         SessionState
	Method        PaymentMethod
	RemoteOrderID string
	PayURL        string
	Receipt       *Receipt
	// VerifyError holds the user-visible reason the last verification attempt
	// ended without success (timeout, support escalation).
	VerifyError string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// ItemSummary joins item titles into the human-readable product summary
// recorded on the completed order.
func (s *CheckoutSession) ItemSummary() string {
	summary := ""
	for i, item := range s.Items {
		if i > 0 {
			summary += ", "
		}
		summary += item.Title
	}
	return summary
}

// BankInstructions is the manual bank transfer block of the checkout view:
// display account fields plus the converted VND amount and the payment memo.
type BankInstructions struct {
	BankID        string
	AccountNumber string
	AccountName   string
	AmountVND     int64
	Amount        string
	Memo          string
	QRImageURL    string
}

// SessionView is the assembled checkout screen state: the session snapshot
// plus payment instructions derived from current settings.
type SessionView struct {
	Session   CheckoutSession
	Remaining time.Duration
	Countdown string
	Bank      *BankInstructions
	Networks  []CryptoNetwork
}
