package model

// PaymentMethod identifies how the buyer settles a checkout session.
type PaymentMethod string

const (
	PaymentMethodCrypto     PaymentMethod = "CRYPTO"
	PaymentMethodBank       PaymentMethod = "BANK"
	PaymentMethodBinancePay PaymentMethod = "BINANCE_PAY"
)

// Valid reports whether the method is one of the supported payment paths.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCrypto, PaymentMethodBank, PaymentMethodBinancePay:
		return true
	}
	return false
}

// RemoteOrderStatus describes the state of an order owned by an external payment provider.
type RemoteOrderStatus string

const (
	RemoteOrderStatusCreated   RemoteOrderStatus = "CREATED"
	RemoteOrderStatusPaid      RemoteOrderStatus = "PAID"
	RemoteOrderStatusExpired   RemoteOrderStatus = "EXPIRED"
	RemoteOrderStatusCancelled RemoteOrderStatus = "CANCELLED"
)

// RemoteOrder references a payment order created on an external provider.
// Only the identifier and status are read back; the provider owns the rest.
type RemoteOrder struct {
	ID     string
	Status RemoteOrderStatus
	PayURL string
}
