package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CryptoNetwork describes one enabled crypto payment network.
type CryptoNetwork struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	QRImageURL string `json:"qr_image_url,omitempty"`
}

// PaymentSettings holds the admin-managed payment configuration: bank account
// display fields, the VND exchange rate, and enabled crypto networks.
type PaymentSettings struct {
	BankID            string
	BankAccountNumber string
	BankAccountName   string
	ExchangeRate      decimal.Decimal
	CryptoNetworks    []CryptoNetwork
	UpdatedAt         time.Time
}

// BankConfigured reports whether the bank transfer path can be offered.
func (s PaymentSettings) BankConfigured() bool {
	return s.BankID != "" && s.BankAccountNumber != "" && s.ExchangeRate.IsPositive()
}

// Network returns the enabled crypto network with the given name.
func (s PaymentSettings) Network(name string) (CryptoNetwork, bool) {
	for _, n := range s.CryptoNetworks {
		if n.Name == name {
			return n, true
		}
	}
	return CryptoNetwork{}, false
}
