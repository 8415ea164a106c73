package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidSettings    = errors.New("invalid payment settings")
	ErrInvalidMethod      = errors.New("invalid payment method")
	ErrSessionClosed      = errors.New("checkout session is closed")
	ErrBankNotConfigured  = errors.New("bank transfer is not configured")
	ErrUnknownNetwork     = errors.New("unknown crypto network")
	// ErrOrderRecordFailed marks the support-escalation case: payment was
	// confirmed but the order record could not be created.
	ErrOrderRecordFailed = errors.New("payment received but order record failed")
)
