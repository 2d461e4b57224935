package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCoupon        = errors.New("invalid coupon code")
	ErrCouponAlreadyApplied = errors.New("a coupon has already been applied")
)

// Rules are the pricing knobs: tax rate, flat shipping fee, and the
// subtotal threshold from which shipping is free.
type Rules struct {
	TaxRate           decimal.Decimal
	ShippingFee       decimal.Decimal
	FreeShipThreshold decimal.Decimal
}

// DefaultRules returns the storefront defaults: 8% tax, flat $10 shipping,
// free shipping from $100.
func DefaultRules() Rules {
	return Rules{
		TaxRate:           decimal.NewFromFloat(0.08),
		ShippingFee:       decimal.NewFromInt(10),
		FreeShipThreshold: decimal.NewFromInt(100),
	}
}

// Coupons maps recognized codes to whole discount percentages. Lookup is an
// exact string match.
type Coupons map[string]int

// DefaultCoupons returns the fixed demo coupon book.
func DefaultCoupons() Coupons {
	return Coupons{
		"SAVE10": 10,
		"SAVE20": 20,
	}
}

// Totals is the derived order summary. Amounts are left unrounded; display
// rounding is the caller's concern.
type Totals struct {
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	Discount   decimal.Decimal
	GrandTotal decimal.Decimal
}

// Calculator computes order totals and tracks the at-most-one active
// coupon for the session.
type Calculator struct {
	rules   Rules
	coupons Coupons
	applied bool
	code    string
	percent int
}

// NewCalculator creates a calculator with the given rules and coupon book.
func NewCalculator(rules Rules, coupons Coupons) *Calculator {
	return &Calculator{
		rules:   rules,
		coupons: coupons,
	}
}

// Apply activates a coupon. At most one coupon can be active; an unknown
// code fails with ErrInvalidCoupon and leaves the current state untouched.
func (c *Calculator) Apply(code string) error {
	if c.applied {
		return ErrCouponAlreadyApplied
	}
	percent, ok := c.coupons[code]
	if !ok {
		return ErrInvalidCoupon
	}
	c.applied = true
	c.code = code
	c.percent = percent
	return nil
}

// Reset returns the coupon state to unapplied.
func (c *Calculator) Reset() {
	c.applied = false
	c.code = ""
	c.percent = 0
}

// AppliedCoupon reports the active coupon code, if any.
func (c *Calculator) AppliedCoupon() (string, bool) {
	return c.code, c.applied
}

// DiscountPercent is the active discount percentage, 0 when no coupon is
// applied.
func (c *Calculator) DiscountPercent() int {
	return c.percent
}

// Quote derives the order summary for a subtotal under the current coupon
// state. Shipping is the flat fee for a non-empty cart below the free-ship
// threshold and zero otherwise.
func (c *Calculator) Quote(subtotal decimal.Decimal) Totals {
	shipping := decimal.Zero
	if subtotal.IsPositive() && subtotal.LessThan(c.rules.FreeShipThreshold) {
		shipping = c.rules.ShippingFee
	}

	tax := subtotal.Mul(c.rules.TaxRate)
	discount := subtotal.Mul(decimal.NewFromInt(int64(c.percent))).Div(decimal.NewFromInt(100))

	return Totals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		Discount:   discount,
		GrandTotal: subtotal.Add(shipping).Add(tax).Sub(discount),
	}
}
