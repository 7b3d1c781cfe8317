package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnRoadPrice(t *testing.T) {
	tests := []struct {
		name      string
		basePrice int
		city      string
		want      int
	}{
		{
			name:      "mumbai reference figure",
			basePrice: 1000000,
			city:      "Mumbai",
			// 1,000,000 + 30,000 insurance + 110,000 rto + 50,000 other
			want: 1190000,
		},
		{
			name:      "bangalore has the highest rto",
			basePrice: 1000000,
			city:      "Bangalore",
			want:      1000000 + 30000 + 130000 + 50000,
		},
		{
			name:      "unknown city resolves to default rates",
			basePrice: 1000000,
			city:      "Atlantis",
			want:      1000000 + 30000 + 40000 + 80000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OnRoadPrice(tt.basePrice, tt.city))
		})
	}
}

func TestOnRoadPriceUnknownCityEqualsDefault(t *testing.T) {
	for _, base := range []int{350000, 999999, 1479000, 2599000} {
		assert.Equal(t, OnRoadPrice(base, DefaultCity), OnRoadPrice(base, "Nowhere"))
	}
}

func TestOnRoadPriceMonotonicInBasePrice(t *testing.T) {
	prev := 0
	for base := 100000; base <= 3000000; base += 137000 {
		got := OnRoadPrice(base, "Chennai")
		assert.Greater(t, got, prev)
		prev = got
	}
}

func TestOnRoadPriceRoundsComponentsIndependently(t *testing.T) {
	// base=333 in New Delhi: insurance 9.99->10, rto 13.32->13,
	// other 26.64->27. Rounding the fee sum once (49.95->50) would
	// also give 383 here, so the per-component figures are pinned via
	// the itemized breakdown rather than the total alone.
	b := Breakdown(333, "New Delhi")
	assert.Equal(t, 10, b.Insurance)
	assert.Equal(t, 13, b.RTO)
	assert.Equal(t, 27, b.Other)
	assert.Equal(t, 383, b.Total)
	assert.Equal(t, b.Total, OnRoadPrice(333, "New Delhi"))
}

func TestBreakdownResolvesCity(t *testing.T) {
	b := Breakdown(1000000, "Atlantis")
	assert.Equal(t, DefaultCity, b.City)
	assert.InDelta(t, 0.04, b.Rates.RTO, 1e-9)

	b = Breakdown(1000000, "Pune")
	assert.Equal(t, "Pune", b.City)
	assert.Equal(t, "Maharashtra", b.Rates.State)
}

func TestRatesForEverySupportedCity(t *testing.T) {
	for _, city := range Cities() {
		rates := RatesFor(city)
		assert.Greater(t, rates.RTO, 0.0, city)
		assert.Greater(t, rates.Other, 0.0, city)
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  string
	}{
		{
			name:  "lakh notation at threshold",
			value: 100000,
			want:  "₹1.00 L",
		},
		{
			name:  "lakh notation for typical price",
			value: 1479000,
			want:  "₹14.79 L",
		},
		{
			name:  "grouped below threshold",
			value: 75920,
			want:  "₹75,920",
		},
		{
			name:  "small value ungrouped",
			value: 640,
			want:  "₹640",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(tt.value))
		})
	}
}

func TestFormatINRPtr(t *testing.T) {
	assert.Equal(t, "N/A", FormatINRPtr(nil))

	v := 1479000
	assert.Equal(t, "₹14.79 L", FormatINRPtr(&v))
}

func TestLookupBasePrice(t *testing.T) {
	exact := LookupBasePrice("Tata Nexon EV")
	require.NotNil(t, exact)
	assert.Equal(t, 1479000, *exact)

	// Bare model names from upstream records match by containment.
	partial := LookupBasePrice("Nexon EV")
	require.NotNil(t, partial)
	assert.Equal(t, 1479000, *partial)

	assert.Nil(t, LookupBasePrice("Rolls-Royce Spectre"))
	assert.Nil(t, LookupBasePrice(""))
}
