package transport

import "github.com/shopspring/decimal"

// Breakdown is the component view of a pricing snapshot. A missing component
// is simply zero; pricing never fails on an incomplete breakdown.
type Breakdown struct {
	Largada decimal.Decimal
	Leva    decimal.Decimal
	Traz    decimal.Decimal
	Retorno decimal.Decimal
}

func (s PricingSnapshot) Breakdown() Breakdown {
	return Breakdown{
		Largada: s.Largada,
		Leva:    s.Leva,
		Traz:    s.Traz,
		Retorno: s.Retorno,
	}
}

var two = decimal.NewFromInt(2)

// LegPrice computes the monetary value of one transport leg. Pure function;
// this is the financially sensitive core and must not grow side effects.
//
// With a breakdown, a one-way job pays the full dispatch+leg+return value to
// whichever leg ran it; a round trip splits by component: LEVA gets
// largada+leva, TRAZ gets traz+retorno. Without a breakdown the undivided
// total is used, halved for round trips since there is nothing to split by.
func LegPrice(snapshot *Breakdown, totalAmountFallback decimal.Decimal, transportType TransportType, legType LegType) decimal.Decimal {
	if snapshot == nil {
		if transportType == TypeRoundTrip {
			return totalAmountFallback.DivRound(two, 2)
		}
		return totalAmountFallback
	}

	switch transportType {
	case TypePickUp:
		return snapshot.Largada.Add(snapshot.Leva).Add(snapshot.Retorno)
	case TypeDropOff:
		return snapshot.Largada.Add(snapshot.Traz).Add(snapshot.Retorno)
	case TypeRoundTrip:
		if legType == LegTraz {
			return snapshot.Traz.Add(snapshot.Retorno)
		}
		return snapshot.Largada.Add(snapshot.Leva)
	default:
		return totalAmountFallback
	}
}
