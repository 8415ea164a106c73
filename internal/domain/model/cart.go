package model

import "time"

// CartLine is a cart row joined with its product.
type CartLine struct {
	Product  Product
	Quantity int
	AddedAt  time.Time
}
