//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"spa-promotions/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestApplyPercentDiscount(t *testing.T) {
	cases := []struct {
		name      string
		fullPrice int64
		percent   float64
		want      int64
	}{
		{name: "20 percent off one million", fullPrice: 1_000_000, percent: 20, want: 800_000},
		{name: "zero percent keeps price", fullPrice: 500_000, percent: 0, want: 500_000},
		{name: "hundred percent zeroes price", fullPrice: 500_000, percent: 100, want: 0},
		{name: "result floored to thousand step", fullPrice: 199_000, percent: 15, want: 169_000},
		{name: "odd price floored down", fullPrice: 1_234_567, percent: 10, want: 1_111_000},
		{name: "negative percent is a no-op", fullPrice: 750_000, percent: -5, want: 750_000},
		{name: "percent above hundred is a no-op", fullPrice: 750_000, percent: 120, want: 750_000},
		{name: "NaN percent is a no-op", fullPrice: 750_000, percent: math.NaN(), want: 750_000},
		{name: "zero price stays zero", fullPrice: 0, percent: 50, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.ApplyPercentDiscount(tc.fullPrice, tc.percent))
		})
	}
}

func TestApplyPercentDiscountProperties(t *testing.T) {
	prices := []int64{0, 1_000, 55_000, 123_456, 999_999, 1_000_000, 25_500_000}
	percents := []float64{0, 1, 12.5, 33, 50, 99, 100}

	for _, p := range prices {
		for _, pct := range percents {
			got := pricing.ApplyPercentDiscount(p, pct)
			assert.LessOrEqual(t, got, p, "discounted price must never exceed full price")
			assert.Zero(t, got%pricing.PriceStep, "discounted price must be a multiple of %d", pricing.PriceStep)
		}
	}
}

func TestDerivePercent(t *testing.T) {
	cases := []struct {
		name          string
		fullPrice     int64
		discountPrice int64
		want          int
	}{
		{name: "straight twenty percent", fullPrice: 1_000_000, discountPrice: 800_000, want: 20},
		{name: "rounds to nearest integer", fullPrice: 300_000, discountPrice: 200_000, want: 33},
		{name: "no discount", fullPrice: 400_000, discountPrice: 400_000, want: 0},
		{name: "zero full price yields zero", fullPrice: 0, discountPrice: 100_000, want: 0},
		{name: "negative full price yields zero", fullPrice: -1, discountPrice: 0, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.DerivePercent(tc.fullPrice, tc.discountPrice))
		})
	}
}

func TestRoundTripLossiness(t *testing.T) {
	// The 1000-step floor makes derive/apply a lossy pair; the re-applied
	// price may differ from the original but never by more than one step
	// plus the rounding of the percentage itself.
	full := int64(1_990_000)
	discount := int64(1_456_000)

	pct := pricing.DerivePercent(full, discount)
	back := pricing.ApplyPercentDiscount(full, float64(pct))

	assert.Zero(t, back%pricing.PriceStep)
	assert.InDelta(t, float64(discount), float64(back), float64(full)/100+pricing.PriceStep)
}
