// Package money holds the decimal arithmetic and formatting rules shared by
// checkout, verification and order records.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ToVND converts a USD amount to integer Vietnamese dong using the configured
// exchange rate, rounded to the nearest whole dong.
func ToVND(usd, rate decimal.Decimal) int64 {
	return usd.Mul(rate).Round(0).IntPart()
}

// FormatVND renders an integer dong amount with thousands separators and the
// currency suffix, e.g. 1249750 -> "1,249,750 VND".
func FormatVND(amount int64) string {
	return groupThousands(amount) + " VND"
}

// FormatUSD renders a USD amount with two decimal places and a dollar sign.
func FormatUSD(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func groupThousands(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := decimal.NewFromInt(amount).String()
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}
