package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductKind classifies digital goods sold by the store.
type ProductKind string

const (
	ProductKindScript     ProductKind = "SCRIPT"
	ProductKindLicenseKey ProductKind = "LICENSE_KEY"
	ProductKindCourse     ProductKind = "COURSE"
)

// Product describes a digital good available for purchase.
type Product struct {
	ID          int64
	Title       string
	Description string
	Kind        ProductKind
	Price       decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
