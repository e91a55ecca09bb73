package transport

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func breakdown(largada, leva, traz, retorno string) *Breakdown {
	return &Breakdown{
		Largada: decimal.RequireFromString(largada),
		Leva:    decimal.RequireFromString(leva),
		Traz:    decimal.RequireFromString(traz),
		Retorno: decimal.RequireFromString(retorno),
	}
}

func TestLegPrice_WithBreakdown(t *testing.T) {
	b := breakdown("10", "20", "15", "5")

	cases := []struct {
		name          string
		transportType TransportType
		legType       LegType
		want          string
	}{
		{"pickup-only collects full one-way value", TypePickUp, LegLeva, "35"},
		{"pickup-only ignores queried leg", TypePickUp, LegTraz, "35"},
		{"dropoff-only collects full one-way value", TypeDropOff, LegTraz, "30"},
		{"round trip leva leg", TypeRoundTrip, LegLeva, "30"},
		{"round trip traz leg", TypeRoundTrip, LegTraz, "20"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LegPrice(b, decimal.NewFromInt(999), tc.transportType, tc.legType)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"got %s, want %s", got, tc.want)
		})
	}
}

func TestLegPrice_NoSnapshotFallsBackToTotal(t *testing.T) {
	total := decimal.NewFromInt(100)

	got := LegPrice(nil, total, TypePickUp, LegLeva)
	assert.True(t, got.Equal(total))

	got = LegPrice(nil, total, TypeDropOff, LegTraz)
	assert.True(t, got.Equal(total))

	// A round trip with no breakdown splits the total evenly.
	got = LegPrice(nil, total, TypeRoundTrip, LegLeva)
	assert.True(t, got.Equal(decimal.NewFromInt(50)))
}

func TestLegPrice_MissingComponentsAreZero(t *testing.T) {
	b := &Breakdown{Leva: decimal.NewFromInt(20)}

	got := LegPrice(b, decimal.Zero, TypePickUp, LegLeva)
	assert.True(t, got.Equal(decimal.NewFromInt(20)))

	got = LegPrice(b, decimal.Zero, TypeRoundTrip, LegTraz)
	assert.True(t, got.Equal(decimal.Zero))
}

func TestLegTypeOf(t *testing.T) {
	assert.Equal(t, LegLeva, LegTypeOf(ExecutionLegPickup))
	assert.Equal(t, LegTraz, LegTypeOf(ExecutionLegDropoff))
}

func TestDefaultPayoutPolicy_FallbackLegPayout(t *testing.T) {
	policy := DefaultPayoutPolicy()

	// 100 × 0.60 × 0.94 = 56.40
	got := policy.FallbackLegPayout(decimal.NewFromInt(100))
	assert.True(t, got.Equal(decimal.RequireFromString("56.40")), "got %s", got)
}
