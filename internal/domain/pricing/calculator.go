// Package pricing holds the pure price-derivation rules shared by the
// service catalog and the promotion composer. Prices are integral amounts
// in the smallest currency unit; promotional prices are always quoted in
// 1000-unit steps.
package pricing

import "math"

// PriceStep is the granularity promotional prices are floored to.
const PriceStep = 1000

// ApplyPercentDiscount derives a promotional price from a full price and a
// percentage off, floored to the nearest PriceStep. A percent outside
// [0,100] (or NaN) leaves the price untouched; the operation never fails.
func ApplyPercentDiscount(fullPrice int64, percent float64) int64 {
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		return fullPrice
	}
	discounted := math.Round(float64(fullPrice) * (1 - percent/100))
	return (int64(discounted) / PriceStep) * PriceStep
}

// DerivePercent back-calculates the discount percentage implied by a pair
// of prices, for display. Because ApplyPercentDiscount floors to PriceStep,
// feeding the result back is not guaranteed to reproduce discountPrice.
func DerivePercent(fullPrice, discountPrice int64) int {
	if fullPrice <= 0 {
		return 0
	}
	return int(math.Round(float64(fullPrice-discountPrice) / float64(fullPrice) * 100))
}

// ValidPercent reports whether percent can take part in a discount
// calculation at all.
func ValidPercent(percent float64) bool {
	return !math.IsNaN(percent) && percent >= 0 && percent <= 100
}
