package transport

import "github.com/shopspring/decimal"

// PayoutPolicy is the last-resort rule for valuing a leg when neither an
// explicit override nor a fixed per-leg rate exists. It lives behind a named
// type so the rates are auditable and replaceable without touching the
// resolver branching.
type PayoutPolicy struct {
	CommissionRate decimal.Decimal
	TaxRate        decimal.Decimal
}

// DefaultPayoutPolicy pays the driver 60% of the base leg value, withholding
// 6% tax on that share.
func DefaultPayoutPolicy() PayoutPolicy {
	return PayoutPolicy{
		CommissionRate: decimal.RequireFromString("0.60"),
		TaxRate:        decimal.RequireFromString("0.06"),
	}
}

func (p PayoutPolicy) FallbackLegPayout(base decimal.Decimal) decimal.Decimal {
	return base.
		Mul(p.CommissionRate).
		Mul(decimal.NewFromInt(1).Sub(p.TaxRate)).
		Round(2)
}
