// Package qr builds presentation-only QR payloads for the checkout screen.
package qr

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/domain/model"
)

// imageBase is the compact QR image service serving Vietnamese bank transfer codes.
const imageBase = "https://img.vietqr.io/image"

// BankImageURL interpolates the compact QR template with bank id, account
// number, amount in dong, the payment memo and the account display name.
func BankImageURL(settings model.PaymentSettings, amountVND int64, memo string) string {
	query := url.Values{}
	query.Set("amount", strconv.FormatInt(amountVND, 10))
	query.Set("addInfo", memo)
	query.Set("accountName", settings.BankAccountName)
	return fmt.Sprintf("%s/%s-%s-compact2.png?%s",
		imageBase, settings.BankID, settings.BankAccountNumber, query.Encode())
}

// WalletPayload returns the QR payload for a crypto network. When the admin
// configured a prerendered image its URL wins; otherwise the raw wallet
// address is returned for client-side rendering.
func WalletPayload(network model.CryptoNetwork) string {
	if network.QRImageURL != "" {
		return network.QRImageURL
	}
	return network.Address
}
