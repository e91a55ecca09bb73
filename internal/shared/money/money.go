package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the fixed number of decimal places for all monetary values (cents).
const Scale = 2

var Zero = decimal.Zero

// ParsePrice converts heterogeneous price payloads (string, number, nil) into an
// exact decimal. It never fails: unparsable input yields zero. String input may
// carry locale formatting ("1.234,56", "1,234.56", "R$ 10,00").
func ParsePrice(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case string:
		return parseString(v)
	case float64:
		return decimal.NewFromFloat(v).Round(Scale)
	case float32:
		return decimal.NewFromFloat32(v).Round(Scale)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

func parseString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	// Drop currency symbols and spaces, keep digits, separators and sign.
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	s = b.String()

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		// Both present: the rightmost separator is the decimal mark.
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			// Multiple commas can only be thousand separators.
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case lastDot >= 0 && strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Percent returns base * pct / 100 rounded to cents.
func Percent(base decimal.Decimal, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(decimal.NewFromInt(100)).Round(Scale)
}

// FloorZero clamps negative amounts to zero.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
