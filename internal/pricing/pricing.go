// Package pricing derives order totals from a cart and an optional applied
// promotion. All amounts are integer cents; percentage math goes through
// decimal arithmetic so rounding is exact and reproducible.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

// DefaultShippingFeeCents is the flat shipping fee applied to non-empty carts.
const DefaultShippingFeeCents int64 = 1000

type Totals struct {
	SubtotalCents   int64 `json:"subtotalCents"`
	ShippingCents   int64 `json:"shippingCents"`
	DiscountCents   int64 `json:"discountCents"`
	GrandTotalCents int64 `json:"grandTotalCents"`
}

type Calculator struct {
	ShippingFeeCents int64
}

// NewCalculator returns a Calculator with the given flat shipping fee.
// A negative fee falls back to the default.
func NewCalculator(shippingFeeCents int64) Calculator {
	if shippingFeeCents < 0 {
		shippingFeeCents = DefaultShippingFeeCents
	}
	return Calculator{ShippingFeeCents: shippingFeeCents}
}

// Compute is a pure function of the cart's current lines and the promotion.
// Shipping applies only to non-empty carts; the discount never exceeds the
// subtotal and the grand total never goes below zero.
func (c Calculator) Compute(cart *domain.Cart, promo *domain.Promotion) Totals {
	subtotal := cart.SubtotalCents()

	var shipping int64
	if subtotal > 0 {
		shipping = c.ShippingFeeCents
	}

	discount := discountCents(subtotal, promo)

	grand := subtotal - discount + shipping
	if grand < 0 {
		grand = 0
	}

	return Totals{
		SubtotalCents:   subtotal,
		ShippingCents:   shipping,
		DiscountCents:   discount,
		GrandTotalCents: grand,
	}
}

// discountCents rounds percent discounts half away from zero to the cent.
func discountCents(subtotalCents int64, promo *domain.Promotion) int64 {
	if promo == nil {
		return 0
	}
	var cents int64
	switch promo.DiscountType {
	case domain.DiscountPercent:
		cents = decimal.NewFromInt(subtotalCents).
			Mul(promo.Amount).
			Div(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	case domain.DiscountFixed:
		cents = promo.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	default:
		return 0
	}
	if cents < 0 {
		return 0
	}
	if cents > subtotalCents {
		return subtotalCents
	}
	return cents
}
