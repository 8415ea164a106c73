package dto

import "github.com/shopspring/decimal"

// SettingsRequest replaces the payment settings.
type SettingsRequest struct {
	BankID            string            `json:"bank_id"`
	BankAccountNumber string            `json:"bank_account_number"`
	BankAccountName   string            `json:"bank_account_name"`
	ExchangeRate      decimal.Decimal   `json:"exchange_rate"`
	CryptoNetworks    []NetworkResponse `json:"crypto_networks"`
}

// SettingsResponse is the admin view of the payment settings.
type SettingsResponse struct {
	BankID            string            `json:"bank_id"`
	BankAccountNumber string            `json:"bank_account_number"`
	BankAccountName   string            `json:"bank_account_name"`
	ExchangeRate      decimal.Decimal   `json:"exchange_rate"`
	CryptoNetworks    []NetworkResponse `json:"crypto_networks"`
}

// PaymentOptionsResponse is the public view of available payment paths.
type PaymentOptionsResponse struct {
	BankConfigured bool              `json:"bank_configured"`
	Networks       []NetworkResponse `json:"networks"`
}
