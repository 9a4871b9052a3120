package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ranashahzaibf22/zero-limit/internal/domain"
)

func cartWith(lines ...domain.CartLine) *domain.Cart {
	return &domain.Cart{Lines: lines}
}

func percentPromo(code string, amount int64) *domain.Promotion {
	return &domain.Promotion{Code: code, DiscountType: domain.DiscountPercent, Amount: decimal.NewFromInt(amount), Active: true}
}

func TestComputeNoPromotion(t *testing.T) {
	calc := NewCalculator(1000)
	cart := cartWith(domain.CartLine{ProductID: "p1", UnitPriceCents: 5999, Quantity: 2})

	totals := calc.Compute(cart, nil)

	if totals.SubtotalCents != 11998 {
		t.Fatalf("expected subtotal 11998, got %d", totals.SubtotalCents)
	}
	if totals.ShippingCents != 1000 {
		t.Fatalf("expected shipping 1000, got %d", totals.ShippingCents)
	}
	if totals.DiscountCents != 0 {
		t.Fatalf("expected no discount, got %d", totals.DiscountCents)
	}
	if totals.GrandTotalCents != 12998 {
		t.Fatalf("expected grand total 12998, got %d", totals.GrandTotalCents)
	}
}

func TestComputePercentDiscountRounding(t *testing.T) {
	calc := NewCalculator(1000)
	cart := cartWith(domain.CartLine{ProductID: "p1", UnitPriceCents: 5999, Quantity: 2})

	// 10% of 119.98 is 11.998, which rounds to 12.00.
	totals := calc.Compute(cart, percentPromo("SAVE10", 10))

	if totals.DiscountCents != 1200 {
		t.Fatalf("expected discount 1200, got %d", totals.DiscountCents)
	}
	if want := int64(11998 - 1200 + 1000); totals.GrandTotalCents != want {
		t.Fatalf("expected grand total %d, got %d", want, totals.GrandTotalCents)
	}
}

func TestComputePercentDiscountClampedToSubtotal(t *testing.T) {
	calc := NewCalculator(1000)
	cart := cartWith(domain.CartLine{ProductID: "p1", UnitPriceCents: 500, Quantity: 1})

	totals := calc.Compute(cart, percentPromo("BLOWOUT", 250))

	if totals.DiscountCents != 500 {
		t.Fatalf("expected discount clamped to subtotal, got %d", totals.DiscountCents)
	}
	if totals.GrandTotalCents != 1000 {
		t.Fatalf("expected grand total of just shipping, got %d", totals.GrandTotalCents)
	}
}

func TestComputeFixedDiscountCappedAtSubtotal(t *testing.T) {
	calc := NewCalculator(1000)
	cart := cartWith(domain.CartLine{ProductID: "p1", UnitPriceCents: 2000, Quantity: 1})
	promo := &domain.Promotion{Code: "TAKE50", DiscountType: domain.DiscountFixed, Amount: decimal.RequireFromString("50.00"), Active: true}

	totals := calc.Compute(cart, promo)

	if totals.DiscountCents != 2000 {
		t.Fatalf("expected discount capped at 2000, got %d", totals.DiscountCents)
	}
	if totals.GrandTotalCents != 1000 {
		t.Fatalf("expected grand total 1000, got %d", totals.GrandTotalCents)
	}
}

func TestComputeFixedDiscountMajorUnits(t *testing.T) {
	calc := NewCalculator(1000)
	cart := cartWith(domain.CartLine{ProductID: "p1", UnitPriceCents: 5999, Quantity: 1})
	promo := &domain.Promotion{Code: "FIVER", DiscountType: domain.DiscountFixed, Amount: decimal.RequireFromString("5.50"), Active: true}

	totals := calc.Compute(cart, promo)

	if totals.DiscountCents != 550 {
		t.Fatalf("expected discount 550, got %d", totals.DiscountCents)
	}
}

func TestComputeEmptyCartHasNoShipping(t *testing.T) {
	calc := NewCalculator(1000)

	totals := calc.Compute(&domain.Cart{}, percentPromo("SAVE10", 10))

	if totals != (Totals{}) {
		t.Fatalf("expected all-zero totals for empty cart, got %+v", totals)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	calc := NewCalculator(1000)
	cart := cartWith(
		domain.CartLine{ProductID: "p1", UnitPriceCents: 5999, Quantity: 2},
		domain.CartLine{ProductID: "p2", VariantID: "v1", UnitPriceCents: 6499, Quantity: 1},
	)
	promo := percentPromo("SAVE10", 10)

	first := calc.Compute(cart, promo)
	second := calc.Compute(cart, promo)

	if first != second {
		t.Fatalf("expected identical totals, got %+v then %+v", first, second)
	}
}

func TestNewCalculatorNegativeFeeUsesDefault(t *testing.T) {
	calc := NewCalculator(-1)
	if calc.ShippingFeeCents != DefaultShippingFeeCents {
		t.Fatalf("expected default fee, got %d", calc.ShippingFeeCents)
	}
}
