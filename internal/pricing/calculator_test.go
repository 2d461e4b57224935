package pricing

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

func newTestCalculator() *Calculator {
	return NewCalculator(DefaultRules(), DefaultCoupons())
}

func TestQuote_ShippingBoundaries(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name     string
		subtotal string
		shipping string
	}{
		{"empty cart ships free", "0", "0"},
		{"below threshold pays the flat fee", "99.99", "10"},
		{"at threshold ships free", "100", "0"},
		{"above threshold ships free", "250.50", "0"},
		{"small order pays the flat fee", "0.01", "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, err := decimal.NewFromString(tt.subtotal)
			if err != nil {
				t.Fatalf("bad subtotal fixture: %v", err)
			}
			want, err := decimal.NewFromString(tt.shipping)
			if err != nil {
				t.Fatalf("bad shipping fixture: %v", err)
			}
			if got := calc.Quote(subtotal).Shipping; !got.Equal(want) {
				t.Errorf("shipping for %s = %s, want %s", tt.subtotal, got, want)
			}
		})
	}
}

func TestQuote_TaxIsEightPercent(t *testing.T) {
	calc := newTestCalculator()

	totals := calc.Quote(decimal.NewFromInt(100))
	if !totals.Tax.Equal(decimal.NewFromInt(8)) {
		t.Errorf("expected tax 8, got %s", totals.Tax)
	}
}

func TestApply_ValidCoupon(t *testing.T) {
	calc := newTestCalculator()

	if err := calc.Apply("SAVE10"); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	code, applied := calc.AppliedCoupon()
	if !applied || code != "SAVE10" {
		t.Errorf("expected SAVE10 active, got %q applied=%v", code, applied)
	}

	totals := calc.Quote(decimal.NewFromInt(100))
	if !totals.Discount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected discount 10, got %s", totals.Discount)
	}
}

func TestApply_InvalidCodeLeavesStateUnchanged(t *testing.T) {
	calc := newTestCalculator()

	if err := calc.Apply("BAD"); !errors.Is(err, ErrInvalidCoupon) {
		t.Fatalf("expected ErrInvalidCoupon, got %v", err)
	}

	if _, applied := calc.AppliedCoupon(); applied {
		t.Error("rejected code must not activate a coupon")
	}
	totals := calc.Quote(decimal.NewFromInt(100))
	if !totals.Discount.IsZero() {
		t.Errorf("expected discount 0 after rejected code, got %s", totals.Discount)
	}
}

func TestApply_SecondCouponRejected(t *testing.T) {
	calc := newTestCalculator()

	if err := calc.Apply("SAVE10"); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := calc.Apply("SAVE20"); !errors.Is(err, ErrCouponAlreadyApplied) {
		t.Fatalf("expected ErrCouponAlreadyApplied, got %v", err)
	}

	// The first coupon stays active.
	code, _ := calc.AppliedCoupon()
	if code != "SAVE10" {
		t.Errorf("expected SAVE10 still active, got %q", code)
	}
}

func TestReset_ReturnsToUnapplied(t *testing.T) {
	calc := newTestCalculator()

	if err := calc.Apply("SAVE20"); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	calc.Reset()

	if _, applied := calc.AppliedCoupon(); applied {
		t.Error("expected no active coupon after Reset")
	}
	if calc.DiscountPercent() != 0 {
		t.Errorf("expected 0 percent after Reset, got %d", calc.DiscountPercent())
	}

	// A fresh coupon can be applied again.
	if err := calc.Apply("SAVE10"); err != nil {
		t.Errorf("Apply after Reset failed: %v", err)
	}
}

func TestQuote_EndToEndScenarios(t *testing.T) {
	// One entry, price 50, quantity 2: subtotal 100, free shipping, 8 tax.
	subtotal := decimal.NewFromInt(50).Mul(decimal.NewFromInt(2))

	calc := newTestCalculator()
	totals := calc.Quote(subtotal)
	if got := totals.GrandTotal.StringFixed(2); got != "108.00" {
		t.Errorf("expected grand total 108.00, got %s", got)
	}

	// Same cart with SAVE20: 20 off, total 88.
	if err := calc.Apply("SAVE20"); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	totals = calc.Quote(subtotal)
	if got := totals.Discount.StringFixed(2); got != "20.00" {
		t.Errorf("expected discount 20.00, got %s", got)
	}
	if got := totals.GrandTotal.StringFixed(2); got != "88.00" {
		t.Errorf("expected grand total 88.00, got %s", got)
	}
}

func TestProperty_QuoteArithmetic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("grand total is subtotal plus shipping plus tax minus discount", prop.ForAll(
		func(cents int, couponIdx int) bool {
			calc := newTestCalculator()
			codes := []string{"", "SAVE10", "SAVE20"}
			if code := codes[couponIdx]; code != "" {
				if err := calc.Apply(code); err != nil {
					return false
				}
			}

			subtotal := decimal.New(int64(cents), -2)
			totals := calc.Quote(subtotal)

			want := subtotal.Add(totals.Shipping).Add(totals.Tax).Sub(totals.Discount)
			return totals.GrandTotal.Equal(want)
		},
		gen.IntRange(0, 1_000_000),
		gen.IntRange(0, 2),
	))

	properties.Property("shipping is zero exactly for empty or free-ship subtotals", prop.ForAll(
		func(cents int) bool {
			calc := newTestCalculator()
			subtotal := decimal.New(int64(cents), -2)
			shipping := calc.Quote(subtotal).Shipping

			freeShip := cents == 0 || cents >= 10000
			if freeShip {
				return shipping.IsZero()
			}
			return shipping.Equal(decimal.NewFromInt(10))
		},
		gen.IntRange(0, 1_000_000),
	))

	properties.TestingRun(t)
}
