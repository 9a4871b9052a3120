package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	// DiscountPercent takes a percentage off the cart subtotal.
	DiscountPercent DiscountType = "percent"
	// DiscountFixed takes a fixed currency amount off, capped at the subtotal.
	DiscountFixed DiscountType = "fixed"
)

func (t DiscountType) Valid() bool {
	return t == DiscountPercent || t == DiscountFixed
}

// Promotion is a discount code. Amount is a percentage for percent
// promotions (10 means 10%) and a currency amount in major units for fixed
// ones (5.50 means 5.50 currency units).
type Promotion struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	DiscountType DiscountType    `json:"discountType"`
	Amount       decimal.Decimal `json:"amount"`
	Expiry       *time.Time      `json:"expiry,omitempty"`
	UsageLimit   *int            `json:"usageLimit,omitempty"`
	UsageCount   int             `json:"usageCount"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"createdAt"`
}
